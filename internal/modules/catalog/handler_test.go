package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caffeine-junky/jobconnect/internal/database"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type serviceResponse struct {
	Data struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
	} `json:"data"`
}

type listResponse struct {
	Data []struct {
		Name string `json:"name"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// setupRouter mounts both groups without auth; auth is covered by the middleware tests.
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

	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(NewService(repository.NewServiceRepository(db))).RegisterRoutes(api, api)
	return router
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createService(t *testing.T, router *gin.Engine, name, desc string) uuid.UUID {
	t.Helper()
	resp := performRequest(router, http.MethodPost, "/api/v1/service", map[string]string{"name": name, "description": desc})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var payload serviceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Data.ID
}

func TestCreateService_DuplicateNameIgnoresCase(t *testing.T) {
	router := setupRouter(t)
	createService(t, router, "Plumbing", "Pipes, geysers and drains")

	resp := performRequest(router, http.MethodPost, "/api/v1/service", map[string]string{"name": "plumbing", "description": "again"})
	require.Equal(t, http.StatusConflict, resp.Code)

	var payload errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "plumbing service already exists", payload.Error.Message)
}

func TestReadServiceByName(t *testing.T) {
	router := setupRouter(t)
	id := createService(t, router, "Electrical", "Wiring and DB boards")

	resp := performRequest(router, http.MethodGet, "/api/v1/service/name/ELECTRICAL", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var payload serviceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, id, payload.Data.ID)

	resp = performRequest(router, http.MethodGet, "/api/v1/service/name/gardening", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListServices_NameFilter(t *testing.T) {
	router := setupRouter(t)
	createService(t, router, "Plumbing", "Pipes")
	createService(t, router, "Electrical", "Wiring")
	createService(t, router, "Pool cleaning", "Pools")

	resp := performRequest(router, http.MethodGet, "/api/v1/service?name=PL", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 1)
	assert.Equal(t, "Plumbing", payload.Data[0].Name)
}

func TestUpdateService_Description(t *testing.T) {
	router := setupRouter(t)
	id := createService(t, router, "Plumbing", "Pipes")

	resp := performRequest(router, http.MethodPut, "/api/v1/service/"+id.String(), map[string]any{"description": "Pipes and geysers"})
	require.Equal(t, http.StatusOK, resp.Code)
	var payload serviceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Pipes and geysers", payload.Data.Description)
	assert.Equal(t, "Plumbing", payload.Data.Name)

	resp = performRequest(router, http.MethodPut, "/api/v1/service/"+id.String(), map[string]any{"description": nil})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteService(t *testing.T) {
	router := setupRouter(t)
	id := createService(t, router, "Plumbing", "Pipes")

	resp := performRequest(router, http.MethodDelete, "/api/v1/service/"+id.String(), nil)
	assert.JSONEq(t, `{"success":true,"data":true}`, resp.Body.String())

	resp = performRequest(router, http.MethodGet, "/api/v1/service/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
