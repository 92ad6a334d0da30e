package payment

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/payment")
	g.POST("", h.Create)
	g.GET("", h.ReadAll)
	g.GET("/:payment_id", h.ReadOne)
	g.PUT("/:payment_id", h.Update)
	g.DELETE("/:payment_id", middleware.AdminOnly(), h.Delete)
}

// Create records a payment for a booking.
// @Summary	Create payment
// @Tags		Payments
// @Security	BearerAuth
// @Param		request	body	CreatePaymentRequest	true	"Payment"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}	"Booking mismatch or invalid amount"
// @Failure	409	{object}	map[string]interface{}	"Payment already exists"
// @Router		/payment [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if !request.BindJSON(c, &req) {
		return
	}
	if !middleware.EnsureSelfOrAdmin(c, "client", req.ClientID) {
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) ReadOne(c *gin.Context) {
	p, ok := h.party(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, p)
}

// ReadAll lists payments ordered by amount.
// @Summary	List payments
// @Tags		Payments
// @Security	BearerAuth
// @Param		client_id		query	string	false	"Client ID"
// @Param		technician_id	query	string	false	"Technician ID"
// @Param		status			query	string	false	"pending, escrow or completed"
// @Param		min_amount		query	number	false	"Lower bound"
// @Param		max_amount		query	number	false	"Upper bound"
// @Router		/payment [GET]
func (h *Handler) ReadAll(c *gin.Context) {
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
	minAmount, ok := request.FloatQuery(c, "min_amount")
	if !ok {
		return
	}
	maxAmount, ok := request.FloatQuery(c, "max_amount")
	if !ok {
		return
	}
	var status *domain.PaymentStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.PaymentStatus(raw)
		status = &s
	}

	items, err := h.service.ReadAll(c.Request.Context(), ListQuery{
		ClientID:     clientID,
		TechnicianID: techID,
		Status:       status,
		MinAmount:    minAmount,
		MaxAmount:    maxAmount,
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
	p, ok := h.party(c)
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if !request.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), p.ID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.UUIDParam(c, "payment_id")
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

// party loads the payment for its client, its technician or an admin.
func (h *Handler) party(c *gin.Context) (*domain.Payment, bool) {
	id, ok := request.UUIDParam(c, "payment_id")
	if !ok {
		return nil, false
	}
	p, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if middleware.IsSelfOrAdmin(c, "client", p.ClientID) || middleware.IsSelfOrAdmin(c, "technician", p.TechnicianID) {
		return p, true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not part of this payment")
	return nil, false
}
