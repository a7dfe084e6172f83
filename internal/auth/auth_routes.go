package auth

import (
	"github.com/sportconnect-sg/backend/config"
	mw "github.com/sportconnect-sg/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes sets up all auth-related routes.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGormAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	router.POST("/register", controller.Register)
	router.POST("/login", controller.Login)
	router.POST("/google", controller.Google)

	router.GET("/me", mw.AuthMiddleware(appConfig.JWT.Secret, db), controller.Me)
}
