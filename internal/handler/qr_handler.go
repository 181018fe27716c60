package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"movievibe/lobbyhub/internal/service"
	"movievibe/lobbyhub/pkg/response"
)

// QRHandler serves join-code QR images. It is only mounted when a renderer
// is configured; the core supplies the join URL, the renderer does the rest.
type QRHandler struct {
	lobbyService service.LobbyService
	renderer     service.QRRenderer
	logger       *zap.Logger
}

func NewQRHandler(lobbyService service.LobbyService, renderer service.QRRenderer, logger *zap.Logger) *QRHandler {
	return &QRHandler{
		lobbyService: lobbyService,
		renderer:     renderer,
		logger:       logger,
	}
}

func (h *QRHandler) Render(c *gin.Context) {
	code := c.Param("code")
	joinURL := h.lobbyService.JoinURL(code)

	png, err := h.renderer.RenderPNG(c.Request.Context(), joinURL)
	if err != nil {
		h.logger.Error("qr render failed", zap.String("code", code), zap.Error(err))
		response.InternalError(c, "failed to render qr code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
