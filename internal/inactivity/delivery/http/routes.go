package http

import (
	"vault-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the activity ping on the user API and the sweep
// endpoints on the internal API. The internal group is expected to carry
// the service key guard already.
func (h *Handler) RegisterRoutes(api, internal *gin.RouterGroup, mw middleware.Middleware) {
	activity := api.Group("/activity")
	activity.Use(mw.Auth())
	{
		activity.POST("/ping", h.Ping)
	}

	monitor := internal.Group("/inactivity")
	{
		monitor.POST("/check", h.Check)
		monitor.GET("/alerts", h.GetAlerts)
	}
}
