package admin

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/domain"
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

// RegisterRoutes mounts every admin route behind AdminOnly.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	admin := protected.Group("/admin")
	admin.Use(middleware.AdminOnly())

	admin.POST("", h.Create)
	admin.GET("", h.ReadAll)
	admin.GET("/email/:email", h.ReadOneByEmail)
	admin.GET("/:admin_id", h.ReadOne)
	admin.PUT("/:admin_id", h.Update)
	admin.DELETE("/:admin_id", h.Delete)

	// moderation
	admin.POST("/verify/:technician_id", h.VerifyTechnician)
	admin.DELETE("/verify/:technician_id", h.UnverifyTechnician)
	admin.PUT("/activation/:user_id", h.SetUserActiveStatus)
}

// Create adds an admin account.
// @Summary	Create admin
// @Tags		Admin
// @Security	BearerAuth
// @Param		request	body	CreateAdminRequest	true	"Admin data"
// @Success	201	{object}	map[string]interface{}
// @Failure	403	{object}	map[string]interface{}	"Admin access required"
// @Failure	409	{object}	map[string]interface{}
// @Router		/admin [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if !request.BindJSON(c, &req) {
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
	id, ok := request.UUIDParam(c, "admin_id")
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

func (h *Handler) ReadOneByEmail(c *gin.Context) {
	a, err := h.service.ReadOneByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}

// ReadAll lists admins.
// @Summary	List admins
// @Tags		Admin
// @Security	BearerAuth
// @Param		active	query	bool	false	"Filter by active flag"
// @Param		role	query	string	false	"SUPER_ADMIN, SUPPORT_ADMIN or CONTENT_ADMIN"
// @Router		/admin [GET]
func (h *Handler) ReadAll(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	active, ok := request.BoolQuery(c, "active")
	if !ok {
		return
	}
	var role *domain.AdminRole
	if raw := c.Query("role"); raw != "" {
		r := domain.AdminRole(raw)
		role = &r
	}

	items, err := h.service.ReadAll(c.Request.Context(), ListQuery{Active: active, Role: role, Skip: skip, Limit: limit})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.UUIDParam(c, "admin_id")
	if !ok {
		return
	}
	var req UpdateAdminRequest
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
	id, ok := request.UUIDParam(c, "admin_id")
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

// VerifyTechnician marks a technician as verified by the calling admin.
// @Summary	Verify technician
// @Tags		Admin - Moderation
// @Security	BearerAuth
// @Param		technician_id	path	string	true	"Technician ID"
// @Success	200	{object}	map[string]interface{}	"false when already verified"
// @Router		/admin/verify/{technician_id} [POST]
func (h *Handler) VerifyTechnician(c *gin.Context) {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	techID, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}

	verified, err := h.service.VerifyTechnician(c.Request.Context(), adminID, techID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, verified)
}

func (h *Handler) UnverifyTechnician(c *gin.Context) {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	techID, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}

	removed, err := h.service.UnverifyTechnician(c.Request.Context(), adminID, techID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, removed)
}

// SetUserActiveStatus activates or deactivates an account of any role.
// @Summary	Set account active flag
// @Tags		Admin - Moderation
// @Security	BearerAuth
// @Param		user_id	path	string				true	"User ID"
// @Param		request	body	SetActiveRequest	true	"Role and flag"
// @Router		/admin/activation/{user_id} [PUT]
func (h *Handler) SetUserActiveStatus(c *gin.Context) {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	userID, ok := request.UUIDParam(c, "user_id")
	if !ok {
		return
	}
	var req SetActiveRequest
	if !request.BindJSON(c, &req) {
		return
	}

	changed, err := h.service.SetUserActiveStatus(c.Request.Context(), adminID, userID, req.Role, *req.IsActive)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, changed)
}
