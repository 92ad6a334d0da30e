package notification

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
	ws      *WSHandler
}

func NewHandler(service *Service, ws *WSHandler) *Handler {
	return &Handler{service: service, ws: ws}
}

// RegisterRoutes mounts the socket on public, since browsers cannot send an
// Authorization header on upgrade; it authenticates with ?token= instead.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if h.ws != nil {
		public.GET("/notification/ws", h.ws.HandleWebSocket)
	}

	g := protected.Group("/notification")
	g.POST("", h.Create)
	g.GET("", h.ReadAll)
	g.GET("/unread_count", h.CountUnread)
	g.PUT("/read_all", h.MarkAllRead)
	g.GET("/:notification_id", h.ReadOne)
	g.PUT("/:notification_id", h.Update)
	g.PUT("/:notification_id/read", h.MarkRead)
	g.DELETE("/:notification_id", h.Delete)
}

// Create stores a notification and pushes it to the addressee when online.
// @Summary	Create notification
// @Tags		Notifications
// @Security	BearerAuth
// @Param		request	body	CreateNotificationRequest	true	"Notification"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}	"No addressee"
// @Router		/notification [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if !request.BindJSON(c, &req) {
		return
	}

	n, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, n)
}

// ReadAll lists notifications. Non-admins only see their own.
// @Summary	List notifications
// @Tags		Notifications
// @Security	BearerAuth
// @Param		client_id		query	string	false	"Client ID (admin)"
// @Param		technician_id	query	string	false	"Technician ID (admin)"
// @Param		is_read			query	bool	false	"Read state"
// @Router		/notification [GET]
func (h *Handler) ReadAll(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	isRead, ok := request.BoolQuery(c, "is_read")
	if !ok {
		return
	}
	q := ListQuery{IsRead: isRead, Skip: skip, Limit: limit}

	userID, _ := middleware.CurrentUserID(c)
	switch domain.UserRole(middleware.CurrentRole(c)) {
	case domain.RoleAdmin:
		if q.ClientID, ok = request.UUIDQuery(c, "client_id"); !ok {
			return
		}
		if q.TechnicianID, ok = request.UUIDQuery(c, "technician_id"); !ok {
			return
		}
	case domain.RoleClient:
		q.ClientID = &userID
	case domain.RoleTechnician:
		q.TechnicianID = &userID
	default:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Unknown role")
		return
	}

	items, err := h.service.ReadAll(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CountUnread(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	n, err := h.service.CountUnread(c.Request.Context(), domain.UserRole(middleware.CurrentRole(c)), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, UnreadCount{Unread: n})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	n, err := h.service.MarkAllRead(c.Request.Context(), domain.UserRole(middleware.CurrentRole(c)), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MarkedCount{Updated: n})
}

func (h *Handler) ReadOne(c *gin.Context) {
	n, ok := h.addressed(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, n)
}

func (h *Handler) Update(c *gin.Context) {
	n, ok := h.addressed(c)
	if !ok {
		return
	}
	var req UpdateNotificationRequest
	if !request.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), n.ID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) MarkRead(c *gin.Context) {
	n, ok := h.addressed(c)
	if !ok {
		return
	}

	updated, err := h.service.MarkRead(c.Request.Context(), n.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	n, ok := h.addressed(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), n.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, deleted)
}

// addressed loads the notification for its addressee or an admin.
func (h *Handler) addressed(c *gin.Context) (*domain.Notification, bool) {
	id, ok := request.UUIDParam(c, "notification_id")
	if !ok {
		return nil, false
	}
	n, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if middleware.CurrentRole(c) == string(domain.RoleAdmin) ||
		(n.ClientID != nil && middleware.IsSelfOrAdmin(c, "client", *n.ClientID)) ||
		(n.TechnicianID != nil && middleware.IsSelfOrAdmin(c, "technician", *n.TechnicianID)) {
		return n, true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "This notification is not addressed to you")
	return nil, false
}
