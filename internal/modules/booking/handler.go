package booking

import (
	"net/http"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/middleware"
	"github.com/caffeine-junky/jobconnect/internal/pkg/request"
	"github.com/caffeine-junky/jobconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/booking")
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.GET("/:booking_id", h.GetBooking)
	g.PUT("/:booking_id", h.UpdateBooking)
	g.DELETE("/:booking_id", h.DeleteBooking)
}

// CreateBooking creates a REQUESTED booking.
// @Summary	Create booking
// @Description	Books a technician for a date and [start, end) time range. Fails with 409 when the technician already has an active booking overlapping the slot.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		request	body	CreateBookingRequest	true	"Booking"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}
// @Failure	404	{object}	map[string]interface{}	"Client or technician not found"
// @Failure	409	{object}	map[string]interface{}	"Slot taken"
// @Router		/booking [POST]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if !request.BindJSON(c, &req) {
		return
	}
	if !middleware.EnsureSelfOrAdmin(c, "client", req.ClientID) {
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, ok := h.participant(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, b)
}

// ListBookings lists bookings ordered by date and start.
// @Summary	List bookings
// @Tags		Bookings
// @Security	BearerAuth
// @Param		client_id		query	string	false	"Client ID"
// @Param		technician_id	query	string	false	"Technician ID"
// @Param		status			query	string	false	"Booking status"
// @Param		booking_date	query	string	false	"YYYY-MM-DD"
// @Router		/booking [GET]
func (h *Handler) ListBookings(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	clientID, ok := request.UUIDQuery(c, "client_id")
	if !ok {
		return
	}
	techID, ok := request.UUIDQuery(c, "technician_id")
	if !ok {
		return
	}
	var status *domain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.BookingStatus(raw)
		status = &s
	}
	var date *datatypes.Date
	if raw := c.Query("booking_date"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid booking_date")
			return
		}
		date = &d
	}

	items, err := h.service.ListBookings(c.Request.Context(), ListQuery{
		ClientID:     clientID,
		TechnicianID: techID,
		Status:       status,
		Date:         date,
		Skip:         skip,
		Limit:        limit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// UpdateBooking changes status and/or description.
// @Summary	Update booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		booking_id	path	string					true	"Booking ID"
// @Param		request		body	UpdateBookingRequest	true	"Fields to change"
// @Failure	400	{object}	map[string]interface{}	"Invalid status transition"
// @Router		/booking/{booking_id} [PUT]
func (h *Handler) UpdateBooking(c *gin.Context) {
	b, ok := h.participant(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if !request.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.UpdateBooking(c.Request.Context(), b.ID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	b, ok := h.participant(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteBooking(c.Request.Context(), b.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, deleted)
}

// participant loads the booking and lets through its client, its technician
// or an admin.
func (h *Handler) participant(c *gin.Context) (*domain.Booking, bool) {
	id, ok := request.UUIDParam(c, "booking_id")
	if !ok {
		return nil, false
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if middleware.IsSelfOrAdmin(c, "client", b.ClientID) || middleware.IsSelfOrAdmin(c, "technician", b.TechnicianID) {
		return b, true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not part of this booking")
	return nil, false
}
