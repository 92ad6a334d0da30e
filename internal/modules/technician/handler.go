package technician

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/middleware"
	"github.com/caffeine-junky/jobconnect/internal/pkg/request"
	"github.com/caffeine-junky/jobconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/technician", h.Create)
	}

	if protected != nil {
		g := protected.Group("/technician")
		self := middleware.SelfOrAdmin("technician", "technician_id")

		g.GET("", h.ReadAll)
		g.GET("/email/:email", h.ReadOneByEmail)
		g.GET("/:technician_id", h.ReadOne)
		g.PUT("/:technician_id", self, h.Update)
		g.DELETE("/:technician_id", self, h.Delete)
	}
}

// Create registers a new technician account.
// @Summary	Register technician
// @Tags		Technicians
// @Param		request	body	CreateTechnicianRequest	true	"Technician data"
// @Success	201	{object}	map[string]interface{}
// @Failure	409	{object}	map[string]interface{}
// @Router		/technician [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTechnicianRequest
	if !request.BindJSON(c, &req) {
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) ReadOne(c *gin.Context) {
	id, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}

	t, err := h.svc.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) ReadOneByEmail(c *gin.Context) {
	t, err := h.svc.ReadOneByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// ReadAll lists technicians.
// @Summary	List technicians
// @Tags		Technicians
// @Security	BearerAuth
// @Param		active			query	bool	false	"Filter by active flag"
// @Param		is_available	query	bool	false	"Filter by availability"
// @Router		/technician [GET]
func (h *Handler) ReadAll(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	active, ok := request.BoolQuery(c, "active")
	if !ok {
		return
	}
	available, ok := request.BoolQuery(c, "is_available")
	if !ok {
		return
	}

	items, err := h.svc.ReadAll(c.Request.Context(), ListQuery{Active: active, IsAvailable: available, Skip: skip, Limit: limit})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}
	var req UpdateTechnicianRequest
	if !request.BindJSON(c, &req) {
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, deleted)
}
