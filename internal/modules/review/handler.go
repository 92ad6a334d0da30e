package review

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
	g := protected.Group("/review")
	g.POST("", h.Create)
	g.GET("", h.ReadAll)
	g.GET("/:review_id", h.ReadOne)
	g.PUT("/:review_id", h.Update)
	g.DELETE("/:review_id", h.Delete)
}

// Create reviews a completed booking.
// @Summary	Create review
// @Tags		Reviews
// @Security	BearerAuth
// @Param		request	body	CreateReviewRequest	true	"Review"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}	"Booking not completed or not yours"
// @Failure	409	{object}	map[string]interface{}	"Already reviewed"
// @Router		/review [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !request.BindJSON(c, &req) {
		return
	}
	if !middleware.EnsureSelfOrAdmin(c, "client", req.ClientID) {
		return
	}

	rv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) ReadOne(c *gin.Context) {
	id, ok := request.UUIDParam(c, "review_id")
	if !ok {
		return
	}

	rv, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

// ReadAll lists reviews, newest first.
// @Summary	List reviews
// @Tags		Reviews
// @Security	BearerAuth
// @Param		client_id		query	string	false	"Client ID"
// @Param		technician_id	query	string	false	"Technician ID"
// @Param		min_rating		query	int		false	"1-5"
// @Router		/review [GET]
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
	minRating, ok := request.IntQuery(c, "min_rating")
	if !ok {
		return
	}

	items, err := h.service.ReadAll(c.Request.Context(), ListQuery{
		ClientID:     clientID,
		TechnicianID: techID,
		MinRating:    minRating,
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
	rv, ok := h.authored(c)
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if !request.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), rv.ID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	rv, ok := h.authored(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), rv.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, deleted)
}

// authored loads the review and lets through its client or an admin.
func (h *Handler) authored(c *gin.Context) (*domain.Review, bool) {
	id, ok := request.UUIDParam(c, "review_id")
	if !ok {
		return nil, false
	}
	rv, err := h.service.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return nil, false
	}
	if !middleware.EnsureSelfOrAdmin(c, "client", rv.ClientID) {
		return nil, false
	}
	return rv, true
}
