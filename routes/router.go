package routes

import (
	"net/http"

	"github.com/sportconnect-sg/backend/config"
	"github.com/sportconnect-sg/backend/internal/auth"
	"github.com/sportconnect-sg/backend/internal/middleware"
	"github.com/sportconnect-sg/backend/internal/session"
	"github.com/sportconnect-sg/backend/internal/user"
	"github.com/sportconnect-sg/backend/internal/venue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes builds the engine with the shared middleware chain and mounts
// every feature's route group.
func SetupRoutes(db *gorm.DB, appConfig *config.Config, log *zap.Logger) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.Default())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/auth")
	auth.RegisterAuthRoutes(authRoutes, db, appConfig)

	userRoutes := router.Group("/users")
	user.RegisterUserRoutes(userRoutes, db, appConfig.JWT.Secret)

	sessionRoutes := router.Group("/sessions")
	session.RegisterSessionRoutes(sessionRoutes, db, appConfig.JWT.Secret)

	venueRoutes := router.Group("/venues")
	venue.RegisterVenueRoutes(venueRoutes, db)

	return router
}
