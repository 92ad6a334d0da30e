package search

import (
	"net/http"
	"strconv"

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
	g := protected.Group("/search")
	g.GET("/nearby/:client_id", middleware.SelfOrAdmin("client", "client_id"), h.Nearby)
	g.GET("/description/:client_id", middleware.SelfOrAdmin("client", "client_id"), h.ByDescription)
	g.GET("/external", h.External)
}

// Nearby lists technicians close to the client.
// @Summary	Search nearby technicians
// @Tags		Search
// @Security	BearerAuth
// @Param		client_id	path	string	true	"Client ID"
// @Param		radius_km	query	number	false	"Radius in km (default 10)"
// @Param		service		query	[]string	false	"Service names, repeatable"
// @Router		/search/nearby/{client_id} [GET]
func (h *Handler) Nearby(c *gin.Context) {
	clientID, ok := request.UUIDParam(c, "client_id")
	if !ok {
		return
	}
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	radius, ok := radiusKm(c)
	if !ok {
		return
	}

	items, err := h.service.SearchNearby(c.Request.Context(), clientID, radius, c.QueryArray("service"), skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ByDescription ranks technicians by how well their services match.
// @Summary	Search technicians by problem description
// @Tags		Search
// @Security	BearerAuth
// @Param		client_id			path	string	true	"Client ID"
// @Param		problem_description	query	string	true	"Free text"
// @Param		radius_km			query	number	false	"Radius in km (default 10)"
// @Router		/search/description/{client_id} [GET]
func (h *Handler) ByDescription(c *gin.Context) {
	clientID, ok := request.UUIDParam(c, "client_id")
	if !ok {
		return
	}
	skip, limit, ok := request.Page(c)
	if !ok {
		return
	}
	radius, ok := radiusKm(c)
	if !ok {
		return
	}

	items, err := h.service.SearchByDescription(c.Request.Context(), clientID, c.Query("problem_description"), radius, skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) External(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("longitude"), 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "latitude and longitude are required")
		return
	}
	radius, ok := radiusKm(c)
	if !ok {
		return
	}

	items, err := h.service.SearchExternal(c.Request.Context(), domain.Location{Latitude: lat, Longitude: lon}, radius)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func radiusKm(c *gin.Context) (float64, bool) {
	v, ok := request.FloatQuery(c, "radius_km")
	if !ok {
		return 0, false
	}
	if v == nil {
		return DefaultRadiusKm, true
	}
	return *v, true
}
