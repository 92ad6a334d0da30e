package availability

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
	"github.com/caffeine-junky/jobconnect/internal/pkg/jwt"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type availabilityResponse struct {
	Data struct {
		ID       uuid.UUID `json:"id"`
		Active   bool      `json:"active"`
		TimeSlot struct {
			Day   int    `json:"day"`
			Start string `json:"start_time"`
			End   string `json:"end_time"`
		} `json:"timeslot"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type fixture struct {
	router *gin.Engine
	techID uuid.UUID
	token  string
}

func setup(t *testing.T) fixture {
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

	techs := repository.NewTechnicianRepository(db)
	tech := &domain.Technician{
		Account:     domain.Account{Fullname: "Sipho", Email: "sipho@example.com", Phone: "0830000001", HashedPassword: "x", IsActive: true},
		Location:    domain.Location{Name: "Johannesburg", Latitude: -26.2041, Longitude: 28.0473},
		IsAvailable: true,
	}
	require.NoError(t, techs.Create(context.Background(), tech))

	tokens := jwt.New("test-secret", time.Hour)
	token, err := tokens.GenerateToken(tech.ID, tech.Email, "technician")
	require.NoError(t, err)

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(tokens))
	NewHandler(NewService(repository.NewAvailabilityRepository(db), techs)).RegisterRoutes(protected)

	return fixture{router: router, techID: tech.ID, token: token}
}

func (f fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token)
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func slotBody(techID uuid.UUID, day int, start, end string) map[string]any {
	return map[string]any{
		"technician_id": techID,
		"timeslot":      map[string]any{"day": day, "start_time": start, "end_time": end},
	}
}

func TestCreateAvailability_ExactDuplicateRejected(t *testing.T) {
	f := setup(t)

	resp := f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 0, "09:00", "12:00"))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var created availabilityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, created.Data.Active)
	assert.Equal(t, "09:00:00", created.Data.TimeSlot.Start)

	resp = f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 0, "09:00:00", "12:00:00"))
	require.Equal(t, http.StatusConflict, resp.Code)
	var payload errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Technician already has availability at day 0 09:00:00-12:00:00", payload.Error.Message)
}

func TestCreateAvailability_OverlapAllowed(t *testing.T) {
	f := setup(t)

	resp := f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 2, "09:00", "12:00"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 2, "10:00", "11:00"))
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 3, "09:00", "12:00"))
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateAvailability_InvalidSlot(t *testing.T) {
	f := setup(t)

	resp := f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 7, "09:00", "12:00"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 1, "12:00", "09:00"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateAvailability_OtherTechnicianForbidden(t *testing.T) {
	f := setup(t)

	resp := f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(uuid.New(), 0, "09:00", "12:00"))
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestUpdateAvailability(t *testing.T) {
	f := setup(t)

	resp := f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 0, "09:00", "12:00"))
	require.Equal(t, http.StatusCreated, resp.Code)
	resp = f.do(http.MethodPost, "/api/v1/technician_availability", slotBody(f.techID, 0, "13:00", "17:00"))
	require.Equal(t, http.StatusCreated, resp.Code)
	var second availabilityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))
	path := "/api/v1/technician_availability/" + second.Data.ID.String()

	// same slot as itself is fine
	resp = f.do(http.MethodPut, path, map[string]any{"timeslot": map[string]any{"day": 0, "start_time": "13:00", "end_time": "17:00"}})
	assert.Equal(t, http.StatusOK, resp.Code)

	// moving onto the first slot collides
	resp = f.do(http.MethodPut, path, map[string]any{"timeslot": map[string]any{"day": 0, "start_time": "09:00", "end_time": "12:00"}})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = f.do(http.MethodPut, path, map[string]any{"active": false})
	require.Equal(t, http.StatusOK, resp.Code)
	var updated availabilityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.False(t, updated.Data.Active)
	assert.Equal(t, "13:00:00", updated.Data.TimeSlot.Start)
}

func TestListAvailability_Filters(t *testing.T) {
	f := setup(t)
	for _, body := range []map[string]any{
		slotBody(f.techID, 0, "09:00", "12:00"),
		slotBody(f.techID, 0, "13:00", "17:00"),
		slotBody(f.techID, 4, "08:00", "10:00"),
	} {
		require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/v1/technician_availability", body).Code)
	}

	resp := f.do(http.MethodGet, "/api/v1/technician_availability?day=0&start_time=12:30", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Data, 1)

	resp = f.do(http.MethodGet, "/api/v1/technician_availability?start_time=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
