package httpserver

import (
	"vault-srv/pkg/errors"
	"vault-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall dependency health.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection failed"))
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed"))
		return
	}
	if err := srv.storage.HealthCheck(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Object storage unavailable"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "vault-srv",
		"version":  "1.0.0",
		"database": "connected",
		"redis":    "connected",
		"storage":  "connected",
	})
}

// readyCheck reports whether the service can take traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "vault-srv",
		"version": "1.0.0",
	})
}

// liveCheck only proves the process is responsive.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "vault-srv",
		"version": "1.0.0",
	})
}
