package middleware

import (
	"strings"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/velja/jobboard-api/internal/services"
)

const (
	SessionIDKey    = "session_id"
	SessionTokenKey = "session_token"
)

// Auth gates the admin area: requests only pass when they carry a valid,
// unrevoked session token.
func Auth(sessionService *services.SessionService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := sessionService.Validate(c.Request.Context(), parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired session")
			return
		}

		c.Set(SessionIDKey, claims.ID)
		c.Set(SessionTokenKey, parts[1])

		c.Next()
	}
}

func GetSessionID(c *drift.Context) string {
	if id, ok := c.Get(SessionIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func GetSessionToken(c *drift.Context) string {
	if token, ok := c.Get(SessionTokenKey); ok {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return ""
}
