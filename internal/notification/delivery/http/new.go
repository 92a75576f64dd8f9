package http

import (
	"vault-srv/internal/notification"
	pkgLog "vault-srv/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc notification.UseCase
}

func New(l pkgLog.Logger, uc notification.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
