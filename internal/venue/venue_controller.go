package venue

import (
	"net/http"

	"github.com/sportconnect-sg/backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// VenueController handles venue-related HTTP requests
type VenueController struct {
	repo VenueRepository
}

// NewVenueController creates a new venue controller
func NewVenueController(repo VenueRepository) *VenueController {
	return &VenueController{repo: repo}
}

// GetVenues godoc
// @Summary List venues for a sport
// @Description Get venues matching the sport query parameter, sorted by name
// @Tags venues
// @Produce json
// @Param sport query string true "Sport name"
// @Success 200 {array} Venue "List of venues"
// @Failure 400 {object} utils.ErrorResponse "Missing sport parameter"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /venues [get]
func (c *VenueController) GetVenues(ctx *gin.Context) {
	sport := ctx.Query("sport")
	if sport == "" {
		utils.BadRequestJSON(ctx, "Missing sport parameter")
		return
	}

	venues, err := c.repo.GetVenuesBySport(sport)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// AddVenue godoc
// @Summary Add a venue
// @Description Upsert a venue by its (name, sport) pair
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body VenueInput true "Venue fields"
// @Success 201 {object} Venue "Venue record"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /venues [post]
func (c *VenueController) AddVenue(ctx *gin.Context) {
	var input VenueInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, "Missing name or sport")
		return
	}

	v, err := c.repo.UpsertVenue(input.Name, input.Sport)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, v)
}
