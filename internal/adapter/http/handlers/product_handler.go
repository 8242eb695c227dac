package handlers

import (
	"log"
	"net/http"

	request "liquiverde_bff/internal/adapter/http/dto/request"
	response "liquiverde_bff/internal/adapter/http/dto/response"
	"liquiverde_bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the read-only product catalog.

type ProductHandler struct {
	usecase usecase.IShoppingListUseCase
}

func NewProductHandler(uc usecase.IShoppingListUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category       query  string  false  "Category"
// @Param        search         query  string  false  "Name or brand search"
// @Param        min_eco_score  query  number  false  "Minimum eco-score (0-100)"
// @Param        skip           query  int     false  "Offset"
// @Param        limit          query  int     false  "Page size"
// @Success      200  {array}   response.ProductResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q request.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	products, err := h.usecase.ListProducts(c.Request.Context(), q.ToFilter())
	if err != nil {
		log.Printf("[product][handler] list failed err=%v", err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// ListCategories godoc
// @Summary      List product categories
// @Tags         products
// @Produce      json
// @Success      200  {array}   entities.Category
// @Failure      503  {object}  pkg.HTTPError
// @Router       /products/categories [get]
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		log.Printf("[product][handler] categories failed err=%v", err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}

	p, err := h.usecase.GetProduct(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// GetSustainability godoc
// @Summary      Get the sustainability breakdown of a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  entities.SustainabilityScore
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id}/sustainability [get]
func (h *ProductHandler) GetSustainability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}

	score, err := h.usecase.GetSustainability(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, score)
}

// GetSubstitutes godoc
// @Summary      List more sustainable substitutes for a product
// @Tags         products
// @Produce      json
// @Param        id           path   int  true   "Product ID"
// @Param        max_results  query  int  false  "Maximum number of substitutes"
// @Success      200  {array}   response.ProductSubstituteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /products/{id}/substitutes [get]
func (h *ProductHandler) GetSubstitutes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}
	var q request.SubstitutesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	subs, err := h.usecase.GetProductSubstitutes(c.Request.Context(), id, q.MaxResults)
	if err != nil {
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProductSubstitutes(subs))
}
