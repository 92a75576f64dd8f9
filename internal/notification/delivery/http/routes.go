package http

import (
	"vault-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the push fan-out and the device token registry.
// The push endpoint accepts either the service key or a user session.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, mw middleware.Middleware) {
	notifications := api.Group("/notifications")
	{
		notifications.POST("/push", mw.InternalOrAuth(), h.SendPush)

		devices := notifications.Group("/devices")
		devices.Use(mw.Auth())
		{
			devices.POST("", h.RegisterDevice)
			devices.DELETE("", h.UnregisterDevice)
		}
	}
}
