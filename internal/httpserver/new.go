package httpserver

import (
	"database/sql"
	"errors"

	"vault-srv/config"
	"vault-srv/pkg/discord"
	"vault-srv/pkg/log"
	"vault-srv/pkg/mailer"
	"vault-srv/pkg/push"
	pkgRedis "vault-srv/pkg/redis"
	"vault-srv/pkg/scope"
	"vault-srv/pkg/storage"

	"github.com/gin-gonic/gin"
)

// HTTPServer wires the vault service. New() only assembles and validates
// dependencies; Run() (in httpserver.go) starts serving.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	port   int
	mode   string

	// Domain configuration
	monitorCfg config.MonitorConfig
	portalCfg  config.PortalConfig

	// Auth & security
	jwtMgr      scope.Manager
	internalKey string

	// External services
	db      *sql.DB
	storage storage.Storage
	redis   pkgRedis.IRedis
	mailer  mailer.IMailer
	push    push.IPush
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	Monitor config.MonitorConfig
	Portal  config.PortalConfig

	JWTManager  scope.Manager
	InternalKey string

	DB      *sql.DB
	Storage storage.Storage
	Redis   pkgRedis.IRedis
	Mailer  mailer.IMailer
	Push    push.IPush
	Discord discord.IDiscord
}

// New creates an HTTPServer. No goroutines are started here.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		mode:        cfg.Mode,
		monitorCfg:  cfg.Monitor,
		portalCfg:   cfg.Portal,
		jwtMgr:      cfg.JWTManager,
		internalKey: cfg.InternalKey,
		db:          cfg.DB,
		storage:     cfg.Storage,
		redis:       cfg.Redis,
		mailer:      cfg.Mailer,
		push:        cfg.Push,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided. Push and
// Discord are optional; everything else is not.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if srv.internalKey == "" {
		return errors.New("internal key is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}
	if srv.mailer == nil {
		return errors.New("mailer is required")
	}

	return nil
}
