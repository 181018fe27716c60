package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"movievibe/lobbyhub/internal/config"
	"movievibe/lobbyhub/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	lobbyHandler *LobbyHandler,
	swipeHandler *SwipeHandler,
	qrHandler *QRHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		lobby := api.Group("/lobby")
		{
			lobby.POST("", lobbyHandler.Create)
			lobby.POST("/join", lobbyHandler.Join)
			lobby.GET("/:code", lobbyHandler.Info)
			lobby.POST("/swipe", swipeHandler.Record)
		}
	}

	// QR image route mounts only when a renderer is configured.
	if qrHandler != nil {
		r.GET("/lobby/:code/qr", qrHandler.Render)
	}

	return r
}
