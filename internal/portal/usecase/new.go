package usecase

import (
	"time"

	"vault-srv/internal/access"
	"vault-srv/internal/portal"
	"vault-srv/internal/portal/repository"
	pkgLog "vault-srv/pkg/log"
	"vault-srv/pkg/mailer"
	"vault-srv/pkg/redis"
	"vault-srv/pkg/scope"
	"vault-srv/pkg/storage"
)

// Config tunes the verification flow.
type Config struct {
	OTPTTL        time.Duration
	OTPRateLimit  int
	OTPRateWindow time.Duration
	SessionTTL    time.Duration
	SignedURLTTL  time.Duration
}

type usecase struct {
	l        pkgLog.Logger
	cfg      Config
	repo     repository.Repository
	accessUC access.UseCase
	mailer   mailer.IMailer
	redis    redis.IRedis
	jwt      scope.Manager
	storage  storage.Storage
	clock    func() time.Time
}

func New(
	l pkgLog.Logger,
	cfg Config,
	repo repository.Repository,
	accessUC access.UseCase,
	m mailer.IMailer,
	rd redis.IRedis,
	jwt scope.Manager,
	st storage.Storage,
) portal.UseCase {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 10 * time.Minute
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = 15 * time.Minute
	}
	return &usecase{
		l:        l,
		cfg:      cfg,
		repo:     repo,
		accessUC: accessUC,
		mailer:   m,
		redis:    rd,
		jwt:      jwt,
		storage:  st,
		clock:    time.Now,
	}
}
