package http

import (
	"vault-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processGetAlertsRequest(c *gin.Context) (getAlertsReq, error) {
	var req getAlertsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.inactivity.delivery.http.processGetAlertsRequest: %v", err)
		return getAlertsReq{}, errors.NewValidationError(0, "query", "invalid query parameters")
	}

	if req.UserID == "" {
		return getAlertsReq{}, errors.NewValidationError(0, "user_id", "user_id is required")
	}

	return req, nil
}
