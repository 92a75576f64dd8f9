package http

import (
	"vault-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the emergency portal. The OTP endpoints are public;
// the document endpoints require a portal session.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, mw middleware.Middleware) {
	emergency := api.Group("/emergency")
	{
		emergency.POST("/otp", h.RequestOTP)
		emergency.POST("/verify", h.VerifyOTP)
	}

	documents := emergency.Group("/documents")
	documents.Use(mw.Auth(), mw.NomineeOnly())
	{
		documents.GET("/:id/view", h.ViewDocument)
		documents.GET("/:id/download", h.DownloadDocument)
	}
}
