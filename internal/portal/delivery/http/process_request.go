package http

import (
	"vault-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processRequestOTPRequest(c *gin.Context) (requestOTPReq, error) {
	var req requestOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.portal.delivery.http.processRequestOTPRequest: %v", err)
		return requestOTPReq{}, errors.NewValidationError(0, "email", "a valid email is required")
	}
	return req, nil
}

func (h *Handler) processVerifyOTPRequest(c *gin.Context) (verifyOTPReq, error) {
	var req verifyOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.portal.delivery.http.processVerifyOTPRequest: %v", err)
		return verifyOTPReq{}, errors.NewValidationError(0, "body", "email and a 6-digit code are required")
	}
	return req, nil
}
