package httpserver

import (
	accessHTTP "vault-srv/internal/access/delivery/http"
	accessRepo "vault-srv/internal/access/repository/postgre"
	accessUC "vault-srv/internal/access/usecase"
	inactivityHTTP "vault-srv/internal/inactivity/delivery/http"
	inactivityRepo "vault-srv/internal/inactivity/repository/postgre"
	inactivityUC "vault-srv/internal/inactivity/usecase"
	"vault-srv/internal/middleware"
	notificationHTTP "vault-srv/internal/notification/delivery/http"
	notificationRepo "vault-srv/internal/notification/repository/postgre"
	notificationUC "vault-srv/internal/notification/usecase"
	notifierUC "vault-srv/internal/notifier/usecase"
	portalHTTP "vault-srv/internal/portal/delivery/http"
	portalRepo "vault-srv/internal/portal/repository/postgre"
	portalUC "vault-srv/internal/portal/usecase"
)

const (
	api         = "/api/v1"
	internalAPI = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	mw := middleware.New(srv.logger, srv.jwtMgr, srv.internalKey)

	// Repositories
	inactivityRepository := inactivityRepo.New(srv.logger, srv.db)
	accessRepository := accessRepo.New(srv.logger, srv.db)
	notificationRepository := notificationRepo.New(srv.logger, srv.db)
	portalRepository := portalRepo.New(srv.logger, srv.db)

	// Use cases
	notificationUseCase := notificationUC.New(srv.logger, notificationRepository, srv.push)
	notifierUseCase := notifierUC.New(srv.logger, srv.mailer, notificationUseCase)
	inactivityUseCase := inactivityUC.New(srv.logger, inactivityRepository, notifierUseCase, inactivityUC.Config{
		MaxWorkers:           srv.monitorCfg.MaxWorkers,
		ResendStageReminders: srv.monitorCfg.ResendStageReminders,
	})
	accessUseCase := accessUC.New(srv.logger, accessRepository)
	portalUseCase := portalUC.New(
		srv.logger,
		portalUC.Config{
			OTPTTL:        srv.portalCfg.OTPTTL,
			OTPRateLimit:  srv.portalCfg.OTPRateLimit,
			OTPRateWindow: srv.portalCfg.OTPRateWindow,
			SessionTTL:    srv.portalCfg.SessionTTL,
			SignedURLTTL:  srv.portalCfg.SignedURLTTL,
		},
		portalRepository,
		accessUseCase,
		srv.mailer,
		srv.redis,
		srv.jwtMgr,
		srv.storage,
	)

	// Routes
	apiGroup := srv.gin.Group(api)
	internalGroup := srv.gin.Group(internalAPI)
	internalGroup.Use(mw.Internal())

	inactivityHTTP.New(srv.logger, inactivityUseCase).RegisterRoutes(apiGroup, internalGroup, mw)
	accessHTTP.New(srv.logger, accessUseCase).RegisterRoutes(apiGroup, mw)
	notificationHTTP.New(srv.logger, notificationUseCase).RegisterRoutes(apiGroup, mw)
	portalHTTP.New(srv.logger, portalUseCase).RegisterRoutes(apiGroup, mw)

	return nil
}
