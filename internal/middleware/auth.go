package middleware

import (
	"strings"

	"vault-srv/internal/model"
	"vault-srv/pkg/response"
	"vault-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth returns a middleware that validates JWT tokens and sets the payload in context.
// It extracts the token from the Authorization header and verifies it using the JWT manager.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.l.Warnf(c.Request.Context(), "Missing Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>" format
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(c.Request.Context(), "Invalid Authorization header format | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			m.l.Warnf(c.Request.Context(), "Empty token in Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Set payload in context for use in handlers
		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// NomineeOnly rejects sessions whose role is not NOMINEE. It must run after
// Auth.
func (m Middleware) NomineeOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := GetScope(c)
		if !sc.IsNominee() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetScope extracts the caller identity placed in the request context by
// Auth. A zero Scope means the request was not authenticated.
func GetScope(c *gin.Context) model.Scope {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}
	}
	return model.Scope{
		UserID: payload.UserID,
		Email:  payload.Email,
		Role:   payload.Role,
		JTI:    payload.ID,
	}
}
