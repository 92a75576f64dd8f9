package http

import (
	"net/http"

	"vault-srv/internal/middleware"
	"vault-srv/internal/model"
	"vault-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Check runs one inactivity sweep. It is invoked by the external scheduler
// and answers in the scheduler's own contract instead of the standard
// envelope.
func (h *Handler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.RunCheck(ctx, model.Scope{})
	if err != nil {
		h.l.Errorf(ctx, "internal.inactivity.delivery.http.Check: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newCheckResp(out))
}

// GetAlerts lists the alert audit trail, filtered by owner and stage.
func (h *Handler) GetAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetAlertsRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GetAlerts(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.inactivity.delivery.http.GetAlerts: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, newGetAlertsResp(out))
}

// Ping records one activity heartbeat for the calling owner.
func (h *Handler) Ping(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(c)
	if err := h.uc.RecordActivity(ctx, sc); err != nil {
		h.l.Errorf(ctx, "internal.inactivity.delivery.http.Ping: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, gin.H{"recorded": true})
}
