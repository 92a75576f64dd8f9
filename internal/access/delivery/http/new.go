package http

import (
	"vault-srv/internal/access"
	pkgLog "vault-srv/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc access.UseCase
}

func New(l pkgLog.Logger, uc access.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
