package venue

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterVenueRoutes sets up venue routes. Both endpoints are public.
func RegisterVenueRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewGormVenueRepository(db)
	controller := NewVenueController(repo)

	router.GET("", controller.GetVenues)
	router.POST("", controller.AddVenue)
}
