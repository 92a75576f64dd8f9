package http

import (
	"vault-srv/internal/middleware"
	"vault-srv/internal/model"
	"vault-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestOTP emails a one-time code to an eligible nominee.
func (h *Handler) RequestOTP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRequestOTPRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.RequestOTP(ctx, model.Scope{}, req.toInput()); err != nil {
		h.l.Errorf(ctx, "internal.portal.delivery.http.RequestOTP: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, gin.H{"message": "OTP sent successfully"})
}

// VerifyOTP trades a valid code for a portal session token and the list of
// accessible documents.
func (h *Handler) VerifyOTP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyOTPRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.VerifyOTP(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.portal.delivery.http.VerifyOTP: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, newAuthorizedResp(out))
}

// ViewDocument returns a short-lived inline URL for one document.
func (h *Handler) ViewDocument(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ViewDocument(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.portal.delivery.http.ViewDocument: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, newLinkResp(out))
}

// DownloadDocument returns a short-lived attachment URL for one document.
func (h *Handler) DownloadDocument(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.DownloadDocument(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.portal.delivery.http.DownloadDocument: %v", err)
		response.ErrorWithMap(c, err, mapErrors)
		return
	}

	response.OK(c, newLinkResp(out))
}
