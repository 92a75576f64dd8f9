package usecase

import (
	"vault-srv/internal/notification"
	"vault-srv/internal/notification/repository"
	pkgLog "vault-srv/pkg/log"
	"vault-srv/pkg/push"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
	push push.IPush
}

func New(l pkgLog.Logger, repo repository.Repository, p push.IPush) notification.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
		push: p,
	}
}
