package http

import (
	"net/http"

	"vault-srv/internal/middleware"
	"vault-srv/internal/notification"
	"vault-srv/pkg/errors"
	"vault-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// SendPush fans a notification out to every device of a user. Session
// callers may only push to themselves; the service key may push to anyone.
func (h *Handler) SendPush(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendPushReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.SendPush: %v", err)
		response.Error(c, errors.NewValidationError(0, "body", "invalid request body"), nil)
		return
	}

	sc := middleware.GetScope(c)
	if !c.GetBool(middleware.ContextKeyInternalCaller) && sc.UserID != req.UserID {
		response.ErrorWithMap(c, notification.ErrNotOwner, mapErrors)
		return
	}

	out, err := h.uc.SendPush(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.SendPush: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "push delivery failed"})
		return
	}

	c.JSON(http.StatusOK, newSendPushResp(out))
}

// RegisterDevice stores one FCM token for the calling user.
func (h *Handler) RegisterDevice(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.RegisterDevice: %v", err)
		response.Error(c, errors.NewValidationError(0, "body", "invalid request body"), nil)
		return
	}

	token, err := h.uc.RegisterDevice(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.RegisterDevice: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, newDeviceResp(token))
}

// UnregisterDevice removes one FCM token.
func (h *Handler) UnregisterDevice(c *gin.Context) {
	ctx := c.Request.Context()

	var req unregisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.UnregisterDevice: %v", err)
		response.Error(c, errors.NewValidationError(0, "body", "invalid request body"), nil)
		return
	}

	if err := h.uc.UnregisterDevice(ctx, middleware.GetScope(c), req.Token); err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.UnregisterDevice: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, gin.H{"removed": true})
}
