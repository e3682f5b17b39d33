package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"dormwatch/config"
	"dormwatch/db"
	"dormwatch/ratelimit"
	"dormwatch/services"
)

type Server struct {
	Config           *config.Config
	AuthRepository   db.AuthRepository
	AuthService      services.AuthService
	ReportRepository db.ReportRepository
	ReportService    services.ReportService
	Limiter          *ratelimit.Limiter
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully, letting in-flight requests finish.
func (s *Server) Start() {
	port := s.Config.Port
	if port == 0 {
		port = 5000
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.setupRouter(),
	}

	go func() {
		log.Infof("server starting on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	log.Info("server exited")
}
