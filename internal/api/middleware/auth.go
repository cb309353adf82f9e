package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voidlabs/ecosystem-indexer/internal/logger"
)

// AuthConfig holds trigger authentication configuration
type AuthConfig struct {
	// SyncSecret authorizes the manual trigger endpoint
	SyncSecret string
	// CronSecret authorizes the scheduler trigger endpoint
	CronSecret string
	// TrustedCronHeader is a platform-injected header accepted in place of a
	// cron secret when none is configured (some schedulers cannot send one)
	TrustedCronHeader string
}

// bearerToken extracts the credential from a Bearer authorization header
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// secretsMatch compares credentials in constant time
func secretsMatch(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func rejectUnauthorized(c *gin.Context, err error) {
	logger.Warn("Authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": "Authentication failed",
		},
	})
}

// SyncAuth returns a gin middleware guarding the manual trigger endpoint with
// a shared secret
func SyncAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SyncSecret == "" {
			rejectUnauthorized(c, errors.New("sync secret not configured"))
			return
		}
		token, ok := bearerToken(c)
		if !ok || !secretsMatch(token, cfg.SyncSecret) {
			rejectUnauthorized(c, errors.New("invalid sync secret"))
			return
		}
		c.Next()
	}
}

// CronAuth returns a gin middleware guarding the scheduler trigger endpoint.
// A configured cron secret is checked as a bearer credential; with no secret
// configured, presence of the trusted platform header is required instead.
func CronAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.CronSecret != "" {
			token, ok := bearerToken(c)
			if !ok || !secretsMatch(token, cfg.CronSecret) {
				rejectUnauthorized(c, errors.New("invalid cron secret"))
				return
			}
			c.Next()
			return
		}

		if cfg.TrustedCronHeader == "" {
			rejectUnauthorized(c, errors.New("cron authentication not configured"))
			return
		}
		if c.GetHeader(cfg.TrustedCronHeader) == "" {
			rejectUnauthorized(c, errors.New("missing trusted cron header"))
			return
		}
		c.Next()
	}
}
