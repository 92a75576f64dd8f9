package http

import (
	"vault-srv/internal/inactivity"
	pkgLog "vault-srv/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc inactivity.UseCase
}

func New(l pkgLog.Logger, uc inactivity.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
