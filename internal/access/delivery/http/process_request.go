package http

import (
	"vault-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processGrantRequest(c *gin.Context) (grantReq, error) {
	var req grantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.access.delivery.http.processGrantRequest: %v", err)
		return grantReq{}, errors.NewValidationError(0, "body", "invalid request body")
	}
	return req, nil
}

func (h *Handler) processRevokeRequest(c *gin.Context) (revokeReq, error) {
	var req revokeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.access.delivery.http.processRevokeRequest: %v", err)
		return revokeReq{}, errors.NewValidationError(0, "body", "invalid request body")
	}
	return req, nil
}

func (h *Handler) processSummaryRequest(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.access.delivery.http.processSummaryRequest: %v", err)
		return summaryReq{}, errors.NewValidationError(0, "query", "resource_type and resource_id are required")
	}
	return req, nil
}
