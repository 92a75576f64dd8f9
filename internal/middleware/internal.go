package middleware

import (
	"crypto/subtle"

	"vault-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// internalKeyHeader carries the shared secret of the external scheduler.
const internalKeyHeader = "X-Internal-Key"

// ContextKeyInternalCaller marks requests admitted by the service key.
const ContextKeyInternalCaller = "internal_caller"

// Internal returns a middleware that guards scheduler-facing endpoints with
// the configured service key.
func (m Middleware) Internal() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(internalKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "Invalid internal key | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// InternalOrAuth admits either the service key or a valid user session.
// Service-key callers are marked in the gin context so handlers can skip
// per-user ownership checks.
func (m Middleware) InternalOrAuth() gin.HandlerFunc {
	auth := m.Auth()
	return func(c *gin.Context) {
		key := c.GetHeader(internalKeyHeader)
		if key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) == 1 {
			c.Set(ContextKeyInternalCaller, true)
			c.Next()
			return
		}
		auth(c)
	}
}
