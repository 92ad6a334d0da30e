package auth

import (
	"net/http"
	"strings"

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

// RegisterRoutes mounts login on public behind loginGuards (rate limiting)
// and /auth/me on protected.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup, loginGuards ...gin.HandlerFunc) {
	public.POST("/auth/login", append(loginGuards, h.Login)...)
	protected.GET("/auth/me", h.Me)
}

// Login issues an access token.
// @Summary	Login
// @Tags		Auth
// @Accept		json
// @Produce	json
// @Param		request	body	LoginRequest	true	"Credentials and user_role (admin, client, technician)"
// @Success	200	{object}	map[string]interface{}	"access_token and token_type"
// @Failure	401	{object}	map[string]interface{}	"Invalid credentials"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !request.BindJSON(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, token)
}

// Me returns the role and profile behind the bearer token.
// @Summary	Current user
// @Tags		Auth
// @Security	BearerAuth
// @Router		/auth/me [GET]
func (h *Handler) Me(c *gin.Context) {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer"))

	me, err := h.service.CurrentUser(c.Request.Context(), token)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, me)
}
