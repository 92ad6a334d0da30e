package techservice

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/middleware"
	"github.com/caffeine-junky/jobconnect/internal/pkg/request"
	"github.com/caffeine-junky/jobconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/technician_service")
	g.POST("", h.Create)
	g.GET("", h.ReadAll)
	g.GET("/:technician_service_id", h.ReadOne)
	g.PUT("/:technician_service_id", h.Update)
	g.DELETE("/:technician_service_id", h.Delete)
}

// Create adds a service to a technician's offering.
// @Summary	Offer service
// @Tags		Technician services
// @Security	BearerAuth
// @Param		request	body	CreateTechnicianServiceRequest	true	"Offering"
// @Success	201	{object}	map[string]interface{}
// @Failure	409	{object}	map[string]interface{}	"Technician already has this service"
// @Router		/technician_service [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTechnicianServiceRequest
	if !request.BindJSON(c, &req) {
		return
	}
	if !middleware.EnsureSelfOrAdmin(c, "technician", req.TechnicianID) {
		return
	}

	ts, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ts)
}

func (h *Handler) ReadOne(c *gin.Context) {
	id, ok := request.UUIDParam(c, "technician_service_id")
	if !ok {
		return
	}

	ts, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ts)
}

// ReadAll lists offerings ordered by price.
// @Summary	List technician services
// @Tags		Technician services
// @Security	BearerAuth
// @Param		technician_id	query	string	false	"Technician ID"
// @Param		service_id		query	string	false	"Service ID"
// @Param		min_price		query	number	false	"Minimum price"
// @Param		max_price		query	number	false	"Maximum price"
// @Router		/technician_service [GET]
func (h *Handler) ReadAll(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	techID, ok := request.UUIDQuery(c, "technician_id")
	if !ok {
		return
	}
	serviceID, ok := request.UUIDQuery(c, "service_id")
	if !ok {
		return
	}
	minPrice, ok := request.FloatQuery(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := request.FloatQuery(c, "max_price")
	if !ok {
		return
	}

	items, err := h.service.ReadAll(c.Request.Context(), ListQuery{
		TechnicianID: techID,
		ServiceID:    serviceID,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
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
	var req UpdateTechnicianServiceRequest
	if !request.BindJSON(c, &req) {
		return
	}

	ts, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ts)
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

// owned parses the path id and checks the caller owns the offering.
func (h *Handler) owned(c *gin.Context) (uuid.UUID, bool) {
	id, ok := request.UUIDParam(c, "technician_service_id")
	if !ok {
		return uuid.Nil, false
	}
	owner, err := h.service.OwnerOf(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return uuid.Nil, false
	}
	if !middleware.EnsureSelfOrAdmin(c, "technician", owner) {
		return uuid.Nil, false
	}
	return id, true
}
