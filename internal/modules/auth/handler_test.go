package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/database"
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/middleware"
	"github.com/caffeine-junky/jobconnect/internal/modules/admin"
	"github.com/caffeine-junky/jobconnect/internal/modules/client"
	"github.com/caffeine-junky/jobconnect/internal/modules/technician"
	"github.com/caffeine-junky/jobconnect/internal/pkg/jwt"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect("file:"+uuid.NewString()+"?mode=memory&cache=shared", database.Options{
		MaxOpenConns: 1,
		LogLevel:     logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	hasher := password.NewHasher(4)
	tokens := jwt.New("test-secret", time.Hour)
	clientRepo := repository.NewClientRepository(db)
	techRepo := repository.NewTechnicianRepository(db)

	clients := client.NewService(clientRepo, repository.NewFavoriteRepository(db), techRepo, hasher)
	technicians := technician.NewService(techRepo, hasher)
	admins := admin.NewService(repository.NewAdminRepository(db), repository.NewVerifiedRepository(db), clientRepo, techRepo, hasher)

	_, err = clients.Create(context.Background(), client.CreateClientRequest{
		Fullname: "Tumelo Modise",
		Email:    "tumelo@example.com",
		Phone:    "0710000000",
		Location: domain.Location{Name: "Soshanguve Block L", Latitude: -25.5236, Longitude: 28.1006},
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	svc := NewService(AdminAccounts(admins), ClientAccounts(clients), TechnicianAccounts(technicians), tokens)

	router := gin.New()
	public := router.Group("/api/v1")
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(tokens))
	NewHandler(svc).RegisterRoutes(public, protected)
	return router
}

func login(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginAndMe(t *testing.T) {
	router := setupRouter(t)

	w := login(router, `{"email":"Tumelo@Example.com","password":"s3cretpass","user_role":"client"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tok struct {
		Data Token `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	assert.Equal(t, "bearer", tok.Data.TokenType)
	require.NotEmpty(t, tok.Data.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Data.AccessToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var me struct {
		Data struct {
			Role string `json:"role"`
			User struct {
				Email    string `json:"email"`
				Location struct {
					Name string `json:"location_name"`
				} `json:"location"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "client", me.Data.Role)
	assert.Equal(t, "tumelo@example.com", me.Data.User.Email)
	assert.Equal(t, "Soshanguve Block L", me.Data.User.Location.Name)
	assert.NotContains(t, w.Body.String(), "hashed_password")
}

func TestLogin_WrongRoleOrPassword(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []string{
		`{"email":"tumelo@example.com","password":"s3cretpass","user_role":"technician"}`,
		`{"email":"tumelo@example.com","password":"wrongpass","user_role":"client"}`,
		`{"email":"tumelo@example.com","password":"s3cretpass","user_role":"owner"}`,
	} {
		w := login(router, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, body)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	}
}

func TestLogin_RoleRequired(t *testing.T) {
	router := setupRouter(t)

	w := login(router, `{"email":"tumelo@example.com","password":"s3cretpass"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
