package availability

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/middleware"
	"github.com/caffeine-junky/jobconnect/internal/pkg/request"
	"github.com/caffeine-junky/jobconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/technician_availability")
	g.POST("", h.Create)
	g.GET("", h.ReadAll)
	g.GET("/:availability_id", h.ReadOne)
	g.PUT("/:availability_id", h.Update)
	g.DELETE("/:availability_id", h.Delete)
}

// Create adds a weekly slot.
// @Summary	Add availability
// @Tags		Availability
// @Security	BearerAuth
// @Param		request	body	CreateAvailabilityRequest	true	"Weekly slot"
// @Success	201	{object}	map[string]interface{}
// @Failure	409	{object}	map[string]interface{}	"Identical slot exists"
// @Router		/technician_availability [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAvailabilityRequest
	if !request.BindJSON(c, &req) {
		return
	}
	if !middleware.EnsureSelfOrAdmin(c, "technician", req.TechnicianID) {
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) ReadOne(c *gin.Context) {
	id, ok := request.UUIDParam(c, "availability_id")
	if !ok {
		return
	}

	a, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// ReadAll lists weekly slots ordered by day and start.
// @Summary	List availability
// @Tags		Availability
// @Security	BearerAuth
// @Param		technician_id	query	string	false	"Technician ID"
// @Param		day				query	int		false	"0 = Monday"
// @Param		start_time		query	string	false	"HH:MM, slots starting at or after"
// @Param		end_time		query	string	false	"HH:MM, slots ending at or before"
// @Router		/technician_availability [GET]
func (h *Handler) ReadAll(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	techID, ok := request.UUIDQuery(c, "technician_id")
	if !ok {
		return
	}
	day, ok := request.IntQuery(c, "day")
	if !ok {
		return
	}
	active, ok := request.BoolQuery(c, "active")
	if !ok {
		return
	}
	start, ok := clockQuery(c, "start_time")
	if !ok {
		return
	}
	end, ok := clockQuery(c, "end_time")
	if !ok {
		return
	}

	items, err := h.service.ReadAll(c.Request.Context(), ListQuery{
		TechnicianID: techID,
		Day:          day,
		StartTime:    start,
		EndTime:      end,
		Active:       active,
		Skip:         skip,
		Limit:        limit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.owned(c)
	if !ok {
		return
	}
	var req UpdateAvailabilityRequest
	if !request.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.owned(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, deleted)
}

func (h *Handler) owned(c *gin.Context) (uuid.UUID, bool) {
	id, ok := request.UUIDParam(c, "availability_id")
	if !ok {
		return uuid.Nil, false
	}
	a, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return uuid.Nil, false
	}
	if !middleware.EnsureSelfOrAdmin(c, "technician", a.TechnicianID) {
		return uuid.Nil, false
	}
	return id, true
}

func clockQuery(c *gin.Context, name string) (*datatypes.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := domain.ParseClock(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid "+name)
		return nil, false
	}
	return &t, true
}
