package usecase

import (
	"vault-srv/internal/access"
	"vault-srv/internal/access/repository"
	pkgLog "vault-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) access.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
