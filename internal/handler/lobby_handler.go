package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"movievibe/lobbyhub/internal/service"
	"movievibe/lobbyhub/pkg/response"
)

type LobbyHandler struct {
	lobbyService service.LobbyService
}

func NewLobbyHandler(lobbyService service.LobbyService) *LobbyHandler {
	return &LobbyHandler{lobbyService: lobbyService}
}

type CreateLobbyRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Nickname string `json:"nickname"`
}

type JoinLobbyRequest struct {
	Code     string `json:"code" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Nickname string `json:"nickname"`
}

func (h *LobbyHandler) Create(c *gin.Context) {
	var req CreateLobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	created, err := h.lobbyService.CreateLobby(c.Request.Context(), req.UserID, req.Nickname)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyIdentifier):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Unavailable(c, "store unavailable, retry later")
		default:
			response.InternalError(c, "failed to create lobby")
		}
		return
	}

	response.Success(c, created)
}

func (h *LobbyHandler) Join(c *gin.Context) {
	var req JoinLobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	lobbyID, err := h.lobbyService.JoinLobby(c.Request.Context(), req.Code, req.UserID, req.Nickname)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyIdentifier):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrLobbyNotFound):
			response.NotFound(c, "lobby not found")
		case errors.Is(err, service.ErrLobbyInactive):
			response.Gone(c, "lobby is no longer active")
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Unavailable(c, "store unavailable, retry later")
		default:
			response.InternalError(c, "failed to join lobby")
		}
		return
	}

	response.Success(c, gin.H{"ok": true, "lobby_id": lobbyID})
}

func (h *LobbyHandler) Info(c *gin.Context) {
	info, err := h.lobbyService.GetLobbyInfo(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyIdentifier):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrLobbyNotFound):
			response.NotFound(c, "lobby not found")
		case errors.Is(err, service.ErrStoreUnavailable):
			response.Unavailable(c, "store unavailable, retry later")
		default:
			response.InternalError(c, "failed to load lobby")
		}
		return
	}

	response.Success(c, info)
}
