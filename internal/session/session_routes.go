package session

import (
	"github.com/sportconnect-sg/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterSessionRoutes wires the session endpoints. Listing and detail are
// public; everything that changes membership requires a valid token.
func RegisterSessionRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewGormSessionRepository(db)
	controller := NewSessionController(repo)

	router.GET("", controller.GetSessions)
	router.GET("/:id", controller.GetSession)

	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware(jwtSecret, db))
	{
		authed.POST("", controller.CreateSession)
		authed.GET("/hosted", controller.GetHostedSessions)
		authed.POST("/:id/join", controller.JoinSession)
		authed.POST("/:id/leave", controller.LeaveSession)
		authed.DELETE("/:id", controller.DeleteSession)
	}
}
