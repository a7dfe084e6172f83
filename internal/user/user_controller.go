package user

import (
	"errors"
	"net/http"

	"github.com/sportconnect-sg/backend/internal/middleware"
	"github.com/sportconnect-sg/backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserController handles profile-related HTTP requests
type UserController struct {
	repo UserRepository
}

// NewUserController creates a new user controller
func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// ProfileInput is the set of fields a user may change about themselves.
type ProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// GetProfile godoc
// @Summary Get own profile
// @Description Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} User "User profile"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /users/profile [get]
// @Security Bearer
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	u, err := c.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.NotFoundJSON(ctx, "user")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, u)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Update the authenticated user's name and email
// @Tags users
// @Accept json
// @Produce json
// @Param profile body ProfileInput true "Profile fields"
// @Success 200 {object} User "Updated profile"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /users/profile [put]
// @Security Bearer
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	var input ProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}

	u, err := c.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.NotFoundJSON(ctx, "user")
		} else {
			utils.InternalErrorJSON(ctx, err)
		}
		return
	}

	if input.Name != "" {
		u.Name = input.Name
	}
	if input.Email != "" {
		u.Email = input.Email
	}

	if err := c.repo.UpdateUser(u); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, u)
}
