package catalog

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/pkg/request"
	"github.com/caffeine-junky/jobconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes exposes reads publicly; writes need a bearer token.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		g := public.Group("/service")
		g.GET("", h.ReadAll)
		g.GET("/name/:name", h.ReadOneByName)
		g.GET("/:service_id", h.ReadOne)
	}

	if protected != nil {
		g := protected.Group("/service")
		g.POST("", h.Create)
		g.PUT("/:service_id", h.Update)
		g.DELETE("/:service_id", h.Delete)
	}
}

// Create adds a service to the catalog.
// @Summary	Create service
// @Tags		Services
// @Security	BearerAuth
// @Param		request	body	CreateServiceRequest	true	"Service"
// @Success	201	{object}	map[string]interface{}
// @Failure	409	{object}	map[string]interface{}	"Service already exists"
// @Router		/service [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !request.BindJSON(c, &req) {
		return
	}

	svc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) ReadOne(c *gin.Context) {
	id, ok := request.UUIDParam(c, "service_id")
	if !ok {
		return
	}

	svc, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) ReadOneByName(c *gin.Context) {
	svc, err := h.service.ReadOneByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

// ReadAll lists the catalog.
// @Summary	List services
// @Tags		Services
// @Param		name	query	string	false	"Case-insensitive name substring"
// @Router		/service [GET]
func (h *Handler) ReadAll(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}

	items, err := h.service.ReadAll(c.Request.Context(), ListQuery{Name: c.Query("name"), Skip: skip, Limit: limit})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.UUIDParam(c, "service_id")
	if !ok {
		return
	}
	var req UpdateServiceRequest
	if !request.BindJSON(c, &req) {
		return
	}

	svc, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.UUIDParam(c, "service_id")
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
