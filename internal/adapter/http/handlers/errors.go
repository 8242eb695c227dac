package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"liquiverde_bff/internal/usecase"
	"liquiverde_bff/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id in path", http.StatusBadRequest)
)

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// mapUseCaseError turns a usecase error into the HTTP envelope. Gateway
// rejections carry the shopping service's own message.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidListID), errors.Is(err, usecase.ErrInvalidListName),
		errors.Is(err, usecase.ErrInvalidBudget), errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidFilter), errors.Is(err, usecase.ErrNothingToUpdate),
		errors.Is(err, usecase.ErrInvalidReviewSession):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetRequired):
		return pkg.NewDomainError("BUDGET_REQUIRED", "Set a budget before optimizing this list", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrListNotFound):
		return pkg.NewDomainError("SHOPPING_LIST_NOT_FOUND", gatewayMessage(err, "Shopping list not found", false), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainError("PRODUCT_NOT_FOUND", gatewayMessage(err, "Product not found", false), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainError("LIST_ITEM_NOT_FOUND", gatewayMessage(err, "List item not found", false), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewSessionNotFound):
		return pkg.NewDomainError("REVIEW_SESSION_NOT_FOUND", "Review session not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrListBusy):
		return pkg.NewDomainError("LIST_BUSY", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingDecision):
		return pkg.NewDomainError("NO_PENDING_DECISION", "Review session is not waiting for a decision", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayRejected):
		return pkg.NewDomainError("SHOPPING_SERVICE_REJECTED", gatewayMessage(err, "The shopping service rejected the request", true), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayUnauthorized):
		return pkg.NewDomainError("SHOPPING_SERVICE_UNAUTHORIZED", gatewayMessage(err, "The shopping service refused our credentials", false), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayUnavailable), errors.Is(err, usecase.ErrGatewayMisconfigured):
		return pkg.NewDomainError("SHOPPING_SERVICE_UNAVAILABLE", gatewayMessage(err, "The shopping service is unavailable, try again later", false), err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// gatewayMessage prefixes msg with the action that failed, e.g.
// "add item: Product not available". With useDetail the service's own
// explanation replaces msg when there is one.
func gatewayMessage(err error, msg string, useDetail bool) string {
	var gwErr *usecase.GatewayError
	if !errors.As(err, &gwErr) {
		return msg
	}
	if useDetail && gwErr.Detail != "" {
		msg = gwErr.Detail
	}
	if gwErr.Action == "" {
		return msg
	}
	return gwErr.Action + ": " + msg
}
