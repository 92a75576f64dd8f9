package usecase

import (
	"time"

	"vault-srv/internal/inactivity"
	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/notifier"
	pkgLog "vault-srv/pkg/log"
)

// Config tunes the sweep.
type Config struct {
	// MaxWorkers bounds how many triggers are processed concurrently.
	MaxWorkers int
	// ResendStageReminders repeats a stage notification on every sweep
	// instead of once per inactivity episode.
	ResendStageReminders bool
}

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier notifier.UseCase
	cfg      Config
	clock    func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, n notifier.UseCase, cfg Config) inactivity.UseCase {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	return &usecase{
		l:        l,
		repo:     repo,
		notifier: n,
		cfg:      cfg,
		clock:    time.Now,
	}
}
