package routes

import (
	"liquiverde_bff/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts      = "/products"
	PathShoppingLists = "/shopping-lists"
	PathReviews       = "/reviews"
	PathWebSocket     = "/ws"
)

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.GET("/categories", h.ListCategories)
		products.GET("/:id", h.GetProduct)
		products.GET("/:id/sustainability", h.GetSustainability)
		products.GET("/:id/substitutes", h.GetSubstitutes)
	}
}

func addShoppingListRoutes(rg *gin.RouterGroup, lists *handlers.ShoppingListHandler, reviews *handlers.ReviewHandler) {
	group := rg.Group(PathShoppingLists)
	{
		group.GET("", lists.ListShoppingLists)
		group.POST("", lists.CreateShoppingList)
		group.GET("/:id", lists.GetShoppingList)
		group.PATCH("/:id", lists.UpdateShoppingList)
		group.DELETE("/:id", lists.DeleteShoppingList)

		group.POST("/:id/items", lists.AddItem)
		group.PATCH("/:id/items/:item_id", lists.UpdateItemQuantity)
		group.DELETE("/:id/items/:item_id", lists.RemoveItem)

		group.POST("/:id/optimize", lists.Optimize)

		group.POST("/:id/reviews", reviews.StartReview)
		group.GET("/:id/reviews", reviews.ListReviews)
	}
}

func addReviewRoutes(rg *gin.RouterGroup, h *handlers.ReviewHandler) {
	reviews := rg.Group(PathReviews)
	{
		reviews.GET("/:session_id", h.GetReview)
		reviews.POST("/:session_id/decision", h.Decide)
	}
}

func addWebSocketRoutes(rg *gin.RouterGroup, h *handlers.WSHandler) {
	rg.GET(PathWebSocket+PathShoppingLists+"/:id", h.HandleWS)
}
