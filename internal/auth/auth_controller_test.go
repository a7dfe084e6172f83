package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sportconnect-sg/backend/config"
	"github.com/sportconnect-sg/backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&user.User{}))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryDays = 7

	router := gin.New()
	RegisterAuthRoutes(router.Group("/auth"), db, cfg)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/auth/register", RegisterInput{
		Name: "Wei Ming", Email: "weiming@example.com", Password: "s3cret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "weiming@example.com", resp.User.Email)

	w = postJSON(router, "/auth/login", LoginInput{
		Email: "weiming@example.com", Password: "s3cret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := setupAuthRouter(t)

	input := RegisterInput{Name: "Wei Ming", Email: "weiming@example.com", Password: "s3cret123"}
	w := postJSON(router, "/auth/register", input)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/auth/register", input)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestLoginBadPassword(t *testing.T) {
	router := setupAuthRouter(t)

	postJSON(router, "/auth/register", RegisterInput{
		Name: "Wei Ming", Email: "weiming@example.com", Password: "s3cret123",
	})

	w := postJSON(router, "/auth/login", LoginInput{
		Email: "weiming@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/auth/login", LoginInput{
		Email: "nobody@example.com", Password: "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleSignInCreatesThenLinks(t *testing.T) {
	router := setupAuthRouter(t)

	// First sign-in creates the account.
	w := postJSON(router, "/auth/google", GoogleInput{
		Email: "g@example.com", Name: "G User", GoogleID: "google-123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Second sign-in reuses it.
	w = postJSON(router, "/auth/google", GoogleInput{
		Email: "g@example.com", Name: "G User", GoogleID: "google-123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.User.ID)
}

func TestMeRequiresToken(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsUser(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/auth/register", RegisterInput{
		Name: "Wei Ming", Email: "weiming@example.com", Password: "s3cret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

	var info UserInfo
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &info))
	assert.Equal(t, "weiming@example.com", info.Email)
}
