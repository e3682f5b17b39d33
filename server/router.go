package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "dormwatch_session"

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		r.Use(s.sessionMiddleware())
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())
	r.Use(requestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.AllowedOriginList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(s.sessionMiddleware())

	// SPA front-end; everything else is JSON.
	r.StaticFile("/", filepath.Join(s.Config.StaticDir, "index.html"))
	r.Static("/static", s.Config.StaticDir)

	s.defineRoutes(r)

	return r
}

// sessionMiddleware wires the signed-cookie session store. HttpOnly and
// SameSite=Lax always; Secure only when the deployment terminates HTTPS.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	store := cookie.NewStore([]byte(s.Config.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.Config.CookieSecure,
	})
	return sessions.Sessions(sessionName, store)
}

func (s *Server) defineRoutes(router *gin.Engine) {
	router.POST("/register", s.handleSignup())
	router.POST("/login", s.handleLogin())
	router.GET("/me", s.handleMe())
	router.GET("/reports", s.handleGetAllReports())
	router.POST("/report", s.RateLimit("report", 5, time.Minute), s.handleCreateReport())

	authorized := router.Group("/")
	authorized.Use(s.Authorize())
	authorized.POST("/logout", s.handleLogout())
	authorized.POST("/report/:id/like", s.RateLimit("like", 10, time.Minute), s.handleLikeReport())
}
