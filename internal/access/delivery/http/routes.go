package http

import (
	"vault-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the owner-facing grant management endpoints.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, mw middleware.Middleware) {
	grants := api.Group("/access")
	grants.Use(mw.Auth())
	{
		grants.POST("/grants", h.Grant)
		grants.DELETE("/grants", h.Revoke)
		grants.GET("/summary", h.Summary)
	}
}
