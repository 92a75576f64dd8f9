package http

import (
	"vault-srv/internal/portal"
	pkgLog "vault-srv/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc portal.UseCase
}

func New(l pkgLog.Logger, uc portal.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
