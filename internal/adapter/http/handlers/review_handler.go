package handlers

import (
	"log"
	"net/http"

	request "liquiverde_bff/internal/adapter/http/dto/request"
	response "liquiverde_bff/internal/adapter/http/dto/response"
	"liquiverde_bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the interactive substitution review.
//
// A review is started per list, then driven by one decision per prompt. State
// changes are also pushed on the list websocket.

type ReviewHandler struct {
	usecase usecase.IReviewSessionUseCase
}

func NewReviewHandler(uc usecase.IReviewSessionUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// StartReview godoc
// @Summary      Start a substitution review for a list
// @Tags         reviews
// @Produce      json
// @Param        id          path   int   true   "List ID"
// @Param        aggressive  query  bool  false  "Accept smaller score improvements"
// @Success      201  {object}  response.ReviewSessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /shopping-lists/{id}/reviews [post]
func (h *ReviewHandler) StartReview(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}
	var q request.StartReviewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	session, err := h.usecase.Start(c.Request.Context(), listID, q.Aggressive)
	if err != nil {
		log.Printf("[review][handler] start failed list_id=%d err=%v", listID, err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromReviewSession(session))
}

// ListReviews godoc
// @Summary      List the review sessions of a list, newest first
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "List ID"
// @Success      200  {array}   response.ReviewSessionResponse
// @Router       /shopping-lists/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	listID, ok := pathID(c, "id")
	if !ok {
		abortWithError(c, errInvalidID)
		return
	}

	sessions, err := h.usecase.ListByListID(c.Request.Context(), listID)
	if err != nil {
		log.Printf("[review][handler] list failed list_id=%d err=%v", listID, err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSessions(sessions))
}

// GetReview godoc
// @Summary      Get a review session
// @Tags         reviews
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.ReviewSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /reviews/{session_id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	session, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(session))
}

// Decide godoc
// @Summary      Accept or reject the pending substitution
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                         true  "Session ID"
// @Param        body        body      request.ReviewDecisionRequest  true  "Decision"
// @Success      200         {object}  response.ReviewSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /reviews/{session_id}/decision [post]
func (h *ReviewHandler) Decide(c *gin.Context) {
	sessionID := c.Param("session_id")
	var payload request.ReviewDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	session, err := h.usecase.Decide(c.Request.Context(), sessionID, *payload.Accept)
	if err != nil {
		log.Printf("[review][handler] decision failed session_id=%s err=%v", sessionID, err)
		abortWithError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSession(session))
}
