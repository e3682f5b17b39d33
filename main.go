package main

import (
	log "github.com/sirupsen/logrus"

	"dormwatch/config"
	"dormwatch/db"
	"dormwatch/ratelimit"
	"dormwatch/server"
	"dormwatch/services"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	authRepo := db.NewAuthRepo(gormDB)
	reportRepo := db.NewReportRepo(gormDB)

	authService := services.NewAuthService(authRepo, conf)
	reportService := services.NewReportService(reportRepo, conf)

	s := &server.Server{
		Config:           conf,
		AuthRepository:   authRepo,
		AuthService:      authService,
		ReportRepository: reportRepo,
		ReportService:    reportService,
		Limiter:          ratelimit.New(),
	}

	s.Start()
}
