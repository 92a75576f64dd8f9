package http

import (
	"vault-srv/internal/middleware"
	"vault-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Grant records one access grant for a nominee. Re-granting is a no-op.
func (h *Handler) Grant(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGrantRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	grant, err := h.uc.GrantAccess(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.access.delivery.http.Grant: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, newGrantItem(grant))
}

// Revoke removes one access grant. Revoking an absent grant is a no-op.
func (h *Handler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRevokeRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.RevokeAccess(ctx, middleware.GetScope(c), req.toInput()); err != nil {
		h.l.Errorf(ctx, "internal.access.delivery.http.Revoke: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, gin.H{"revoked": true})
}

// Summary reports which nominees hold a direct grant on one resource.
func (h *Handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummaryRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GetAccessSummary(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.access.delivery.http.Summary: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, newSummaryResp(out))
}
