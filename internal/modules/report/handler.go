package report

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/middleware"
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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/report")
	g.GET("/technician/:technician_id", middleware.SelfOrAdmin("technician", "technician_id"), h.Technician)
	g.GET("/platform", middleware.AdminOnly(), h.Platform)
}

// Technician returns the performance report of one technician.
// @Summary	Technician report
// @Tags		Reports
// @Security	BearerAuth
// @Param		technician_id	path	string	true	"Technician ID"
// @Success	200	{object}	map[string]interface{}
// @Failure	404	{object}	map[string]interface{}	"Technician not found"
// @Router		/report/technician/{technician_id} [GET]
func (h *Handler) Technician(c *gin.Context) {
	id, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}

	rep, err := h.service.TechnicianReport(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rep)
}

// Platform returns platform-wide totals. Admin only.
// @Summary	Platform summary
// @Tags		Reports
// @Security	BearerAuth
// @Router		/report/platform [GET]
func (h *Handler) Platform(c *gin.Context) {
	sum, err := h.service.PlatformSummary(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sum)
}
