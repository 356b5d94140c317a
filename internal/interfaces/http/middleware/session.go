// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
)

const (
	// SessionTokenHeader returns a freshly issued session token to the client
	SessionTokenHeader = "X-Session-Token"
	// SessionIDKey is the gin context key holding the guest session id
	SessionIDKey = "session_id"
)

// Session resolves the guest session from a bearer token or the session
// cookie. Requests without a valid token start a new session.
func Session(cfg *config.Config, sessions *auth.SessionManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(cfg.Session.CookieName)
		}

		if token != "" {
			claims, err := sessions.Validate(token)
			if err == nil {
				c.Set(SessionIDKey, claims.SessionID)
				c.Next()
				return
			}
			logger.WithError(err).WithField("request_id", c.GetString(RequestIDKey)).Debug("Discarding session token")
		}

		sessionID := uuid.New().String()
		token, err := sessions.Issue(sessionID)
		if err != nil {
			logger.WithError(err).Error("Failed to issue session token")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to start session",
			})
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Session.CookieName, token, int(cfg.Session.TokenExpiry.Seconds()), "/", "", cfg.Session.CookieSecure, true)
		c.Header(SessionTokenHeader, token)
		c.Set(SessionIDKey, sessionID)

		c.Next()
	}
}

// GetSessionID returns the session id resolved by Session
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID := c.GetString(SessionIDKey)
	return sessionID, sessionID != ""
}
