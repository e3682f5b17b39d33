package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	errs "dormwatch/errors"
	"dormwatch/ratelimit"
	"dormwatch/server/response"
)

const (
	sessionKeyUserID   = "userID"
	sessionKeyUsername = "username"
)

// Authorize rejects requests that do not carry a valid logged-in session and
// exposes the session identity to downstream handlers via the gin context.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, ok := sessionUser(c)
		if !ok {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		c.Set("userID", userID)
		c.Set("username", username)
		c.Next()
	}
}

// RateLimit is a best-effort per-client-address limiter for a named action.
func (s *Server) RateLimit(action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ratelimit.Key(action, clientAddr(c))
		if !s.Limiter.Allow(key, limit, window) {
			respondAndAbort(c, "", http.StatusTooManyRequests, nil, errs.ErrRateLimited)
			return
		}
		c.Next()
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// sessionUser reads the identity bound to the request's session, if any.
func sessionUser(c *gin.Context) (uint, string, bool) {
	session := sessions.Default(c)
	userID, ok := session.Get(sessionKeyUserID).(uint)
	if !ok || userID == 0 {
		return 0, "", false
	}
	username, _ := session.Get(sessionKeyUsername).(string)
	return userID, username, true
}

func clientAddr(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *errs.Error) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}
