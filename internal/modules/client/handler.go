package client

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
		public.POST("/client", h.Create)
	}

	if protected != nil {
		g := protected.Group("/client")
		self := middleware.SelfOrAdmin("client", "client_id")

		g.GET("", h.ReadAll)
		g.GET("/email/:email", h.ReadOneByEmail)
		g.GET("/:client_id", h.ReadOne)
		g.PUT("/:client_id", self, h.Update)
		g.DELETE("/:client_id", self, h.Delete)

		g.GET("/:client_id/favorites", self, h.ListFavorites)
		g.POST("/:client_id/favorites/:technician_id", self, h.AddFavorite)
		g.DELETE("/:client_id/favorites/:technician_id", self, h.RemoveFavorite)
	}
}

// Create registers a new client account.
// @Summary	Register client
// @Tags		Clients
// @Param		request	body	CreateClientRequest	true	"Client data"
// @Success	201	{object}	map[string]interface{}
// @Failure	400	{object}	map[string]interface{}
// @Failure	409	{object}	map[string]interface{}
// @Router		/client [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !request.BindJSON(c, &req) {
		return
	}

	cl, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cl)
}

func (h *Handler) ReadOne(c *gin.Context) {
	id, ok := request.UUIDParam(c, "client_id")
	if !ok {
		return
	}

	cl, err := h.svc.ReadOne(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cl)
}

func (h *Handler) ReadOneByEmail(c *gin.Context) {
	cl, err := h.svc.ReadOneByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cl)
}

// ReadAll lists clients.
// @Summary	List clients
// @Tags		Clients
// @Security	BearerAuth
// @Param		active	query	bool	false	"Filter by active flag"
// @Param		skip	query	int	false	"Offset (default 0)"
// @Param		limit	query	int	false	"Page size (default 100)"
// @Router		/client [GET]
func (h *Handler) ReadAll(c *gin.Context) {
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	active, ok := request.BoolQuery(c, "active")
	if !ok {
		return
	}

	items, err := h.svc.ReadAll(c.Request.Context(), ListQuery{Active: active, Skip: skip, Limit: limit})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := request.UUIDParam(c, "client_id")
	if !ok {
		return
	}
	var req UpdateClientRequest
	if !request.BindJSON(c, &req) {
		return
	}

	cl, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cl)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.UUIDParam(c, "client_id")
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

func (h *Handler) ListFavorites(c *gin.Context) {
	id, ok := request.UUIDParam(c, "client_id")
	if !ok {
		return
	}
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}

	items, err := h.svc.ListFavoriteTechnicians(c.Request.Context(), id, skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	clientID, ok := request.UUIDParam(c, "client_id")
	if !ok {
		return
	}
	technicianID, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}

	added, err := h.svc.AddFavoriteTechnician(c.Request.Context(), clientID, technicianID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, added)
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	clientID, ok := request.UUIDParam(c, "client_id")
	if !ok {
		return
	}
	technicianID, ok := request.UUIDParam(c, "technician_id")
	if !ok {
		return
	}

	removed, err := h.svc.RemoveFavoriteTechnician(c.Request.Context(), clientID, technicianID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, removed)
}
