package auth

import (
	"errors"
	"net/http"

	"github.com/sportconnect-sg/backend/config"
	"github.com/sportconnect-sg/backend/internal/middleware"
	"github.com/sportconnect-sg/backend/internal/user"
	"github.com/sportconnect-sg/backend/pkg/token"
	"github.com/sportconnect-sg/backend/pkg/utils"
	"github.com/sportconnect-sg/backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and federated sign-in.
type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

// NewAuthController creates a new auth controller
func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: appConfig}
}

func (c *AuthController) issueToken(ctx *gin.Context, u *user.User) {
	t, err := token.Generate(u.ID, c.appConfig.JWT.Secret, c.appConfig.JWT.ExpiryDays)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, AuthResponse{
		Token: t,
		User:  UserInfo{ID: u.ID, Email: u.Email, Name: u.Name},
	})
}

// Register godoc
// @Summary Register a new account
// @Description Create an email/password account and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterInput true "Registration fields"
// @Success 200 {object} AuthResponse "Token and user"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} utils.ErrorResponse "Email already registered"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var input RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "invalid registration payload", toFields(validator.ParseError(err)))
		return
	}

	existing, err := c.repo.FindUserByEmail(input.Email)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	if existing != nil {
		utils.ConflictJSON(ctx, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	u := &user.User{Email: input.Email, Name: input.Name, PasswordHash: hash}
	if err := c.repo.CreateUser(u); err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	c.issueToken(ctx, u)
}

// Login godoc
// @Summary Log in
// @Description Exchange email/password credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Login fields"
// @Success 200 {object} AuthResponse "Token and user"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var input LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}

	u, err := c.repo.FindUserByEmail(input.Email)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	// Federated accounts have no password hash and cannot log in this way.
	if u == nil || u.PasswordHash == "" || !utils.CheckPassword(u.PasswordHash, input.Password) {
		utils.ErrorJSON(ctx, http.StatusUnauthorized, errors.New("Invalid credentials"))
		return
	}

	c.issueToken(ctx, u)
}

// Google godoc
// @Summary Sign in with Google
// @Description Create or link an account from a Google identity and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body GoogleInput true "Google identity fields"
// @Success 200 {object} AuthResponse "Token and user"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /auth/google [post]
func (c *AuthController) Google(ctx *gin.Context) {
	var input GoogleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}

	u, err := c.repo.FindUserByEmail(input.Email)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}

	if u == nil {
		u = &user.User{Email: input.Email, Name: input.Name, GoogleID: &input.GoogleID}
		if err := c.repo.CreateUser(u); err != nil {
			utils.InternalErrorJSON(ctx, err)
			return
		}
	} else if u.GoogleID == nil {
		u.GoogleID = &input.GoogleID
		if err := c.repo.UpdateUser(u); err != nil {
			utils.InternalErrorJSON(ctx, err)
			return
		}
	}

	c.issueToken(ctx, u)
}

// Me godoc
// @Summary Current user
// @Description Resolve the bearer token to the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} UserInfo "Current user"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "User not found"
// @Router /auth/me [get]
// @Security Bearer
func (c *AuthController) Me(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	u, err := c.repo.FindUserByID(userID)
	if err != nil {
		utils.InternalErrorJSON(ctx, err)
		return
	}
	if u == nil {
		utils.NotFoundJSON(ctx, "user")
		return
	}

	ctx.JSON(http.StatusOK, UserInfo{ID: u.ID, Email: u.Email, Name: u.Name})
}

func toFields(m map[string]string) map[string]interface{} {
	fields := make(map[string]interface{}, len(m))
	for k, v := range m {
		fields[k] = v
	}
	return fields
}
