package user

import (
	mw "github.com/sportconnect-sg/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUserRoutes sets up profile routes.
func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewGormUserRepository(db)
	controller := NewUserController(repo)

	router.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		router.GET("/profile", controller.GetProfile)
		router.PUT("/profile", controller.UpdateProfile)
	}
}
