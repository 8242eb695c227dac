package handlers

import (
	"log"
	"net/http"

	request "liquiverde_bff/internal/adapter/http/dto/request"
	response "liquiverde_bff/internal/adapter/http/dto/response"
	"liquiverde_bff/internal/domain/entities"
	"liquiverde_bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ShoppingListHandler handles list CRUD, item edits and the budget optimizer.
//
// Every write answers with the list as re-fetched from the shopping service.

type ShoppingListHandler struct {
	usecase usecase.IShoppingListUseCase
}

func NewShoppingListHandler(uc usecase.IShoppingListUseCase) *ShoppingListHandler {
	return &ShoppingListHandler{usecase: uc}
}

// ListShoppingLists godoc
// @Summary      List shopping lists
// @Tags         shopping-lists
// @Produce      json
// @Success      200  {array}   response.ShoppingListResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /shopping-lists [get]
func (h *ShoppingListHandler) ListShoppingLists(c *gin.Context) {
	states, err := h.usecase.ListShoppingLists(c.Request.Context())
	if err != nil {
		log.Printf("[list][handler] list failed err=%v", err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromListStates(states))
}

// CreateShoppingList godoc
// @Summary      Create a shopping list
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateShoppingListRequest  true  "List"
// @Success      201   {object}  response.ShoppingListResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /shopping-lists [post]
func (h *ShoppingListHandler) CreateShoppingList(c *gin.Context) {
	var payload request.CreateShoppingListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	state, err := h.usecase.CreateShoppingList(c.Request.Context(), payload.ResolveName(), payload.Budget)
	if err != nil {
		log.Printf("[list][handler] create failed err=%v", err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	log.Printf("[list][handler] created list_id=%d", state.List.ID)
	c.JSON(http.StatusCreated, response.FromListState(state))
}

// GetShoppingList godoc
// @Summary      Get a shopping list with its budget summary
// @Tags         shopping-lists
// @Produce      json
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  response.ShoppingListResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /shopping-lists/{id} [get]
func (h *ShoppingListHandler) GetShoppingList(c *gin.Context) {
	h.withList(c, func(listID int64) (entities.ListState, error) {
		return h.usecase.Refresh(c.Request.Context(), listID)
	}, http.StatusOK)
}

// UpdateShoppingList godoc
// @Summary      Rename a list or change its budget
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        id    path      int                                true  "List ID"
// @Param        body  body      request.UpdateShoppingListRequest  true  "Changes"
// @Success      200   {object}  response.ShoppingListResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /shopping-lists/{id} [patch]
func (h *ShoppingListHandler) UpdateShoppingList(c *gin.Context) {
	var payload request.UpdateShoppingListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	h.withList(c, func(listID int64) (entities.ListState, error) {
		return h.usecase.UpdateShoppingList(c.Request.Context(), listID, payload.ResolveName(), payload.Budget)
	}, http.StatusOK)
}

// DeleteShoppingList godoc
// @Summary      Delete a shopping list
// @Tags         shopping-lists
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /shopping-lists/{id} [delete]
func (h *ShoppingListHandler) DeleteShoppingList(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}
	if err := h.usecase.DeleteShoppingList(c.Request.Context(), listID); err != nil {
		log.Printf("[list][handler] delete failed list_id=%d err=%v", listID, err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary      Add a product to a list
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "List ID"
// @Param        body  body      request.AddItemRequest  true  "Item"
// @Success      201   {object}  response.ShoppingListResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /shopping-lists/{id}/items [post]
func (h *ShoppingListHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	h.withList(c, func(listID int64) (entities.ListState, error) {
		return h.usecase.AddItem(c.Request.Context(), listID, payload.ProductID, payload.ResolveQuantity())
	}, http.StatusCreated)
}

// UpdateItemQuantity godoc
// @Summary      Change the quantity of a list item
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        id       path      int                                true  "List ID"
// @Param        item_id  path      int                                true  "Item ID"
// @Param        body     body      request.UpdateItemQuantityRequest  true  "Quantity"
// @Success      200      {object}  response.ShoppingListResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /shopping-lists/{id}/items/{item_id} [patch]
func (h *ShoppingListHandler) UpdateItemQuantity(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}
	var payload request.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	h.withList(c, func(listID int64) (entities.ListState, error) {
		return h.usecase.UpdateItemQuantity(c.Request.Context(), listID, itemID, payload.Quantity)
	}, http.StatusOK)
}

// RemoveItem godoc
// @Summary      Remove an item from a list
// @Tags         shopping-lists
// @Produce      json
// @Param        id       path      int  true  "List ID"
// @Param        item_id  path      int  true  "Item ID"
// @Success      200      {object}  response.ShoppingListResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /shopping-lists/{id}/items/{item_id} [delete]
func (h *ShoppingListHandler) RemoveItem(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}
	h.withList(c, func(listID int64) (entities.ListState, error) {
		return h.usecase.RemoveItem(c.Request.Context(), listID, itemID)
	}, http.StatusOK)
}

// Optimize godoc
// @Summary      Run the budget optimizer on a list
// @Tags         shopping-lists
// @Produce      json
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  response.OptimizationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /shopping-lists/{id}/optimize [post]
func (h *ShoppingListHandler) Optimize(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}

	report, err := h.usecase.Optimize(c.Request.Context(), listID)
	if err != nil {
		log.Printf("[list][handler] optimize failed list_id=%d err=%v", listID, err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOptimizationReport(report))
}

func (h *ShoppingListHandler) withList(c *gin.Context, fn func(listID int64) (entities.ListState, error), status int) {
	listID, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}

	state, err := fn(listID)
	if err != nil {
		log.Printf("[list][handler] %s %s failed list_id=%d err=%v", c.Request.Method, c.FullPath(), listID, err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(status, response.FromListState(state))
}
