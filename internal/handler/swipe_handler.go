package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"movievibe/lobbyhub/internal/model"
	"movievibe/lobbyhub/internal/service"
	"movievibe/lobbyhub/pkg/response"
)

type SwipeHandler struct {
	swipeService service.SwipeService
}

func NewSwipeHandler(swipeService service.SwipeService) *SwipeHandler {
	return &SwipeHandler{swipeService: swipeService}
}

type SwipeRequest struct {
	LobbyID  string `json:"lobby_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	ItemID   *int64 `json:"item_id" binding:"required"`
	Decision string `json:"decision" binding:"required"`
}

func (h *SwipeHandler) Record(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	matched, err := h.swipeService.RecordSwipe(
		c.Request.Context(),
		req.LobbyID,
		req.UserID,
		*req.ItemID,
		model.Decision(req.Decision),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyIdentifier),
			errors.Is(err, service.ErrInvalidDecision):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrNotMember):
			response.Forbidden(c, "user is not in lobby")
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Unavailable(c, "store unavailable, retry later")
		default:
			response.InternalError(c, "failed to record swipe")
		}
		return
	}

	response.Success(c, gin.H{"ok": true, "matched": matched})
}
