package main

import (
	"log"

	"github.com/sportconnect-sg/backend/config"
	_ "github.com/sportconnect-sg/backend/docs"
	"github.com/sportconnect-sg/backend/internal/session"
	"github.com/sportconnect-sg/backend/internal/user"
	"github.com/sportconnect-sg/backend/internal/venue"
	"github.com/sportconnect-sg/backend/pkg/logger"
	"github.com/sportconnect-sg/backend/routes"

	"go.uber.org/zap"
)

// @title SportConnect SG API
// @version 1.0
// @description Backend for finding and hosting sports sessions in Singapore.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	cfg := config.GetConfig()

	zlog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&venue.Venue{},
		&session.Session{},
		&session.SessionParticipant{},
	); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	router := routes.SetupRoutes(config.DB, cfg, zlog)

	addr := ":" + cfg.App.Port
	zlog.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.App.Env))
	if err := router.Run(addr); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
