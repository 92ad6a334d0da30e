package notification

import (
	"log"
	"net/http"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/middleware"
	"github.com/caffeine-junky/jobconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
)

type WSHandler struct {
	hub      *Hub
	tokens   middleware.TokenValidator
	upgrader websocket.Upgrader
}

// NewWSHandler accepts origins the same way the CORS middleware does; an
// empty list or "*" allows any origin.
func NewWSHandler(hub *Hub, tokens middleware.TokenValidator, origins []string) *WSHandler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || allowed["*"] || origin == "" || allowed[origin]
			},
		},
	}
}

// HandleWebSocket authenticates with ?token= and keeps the socket open for
// pushes until the client goes away.
// @Summary	Live notifications
// @Tags		Notifications
// @Param		token	query	string	true	"JWT access token"
// @Router		/notification/ws [GET]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required")
		return
	}
	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}
	role := domain.UserRole(claims.Role)
	if role != domain.RoleClient && role != domain.RoleTechnician {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only clients and technicians receive notifications")
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed error=%q", err.Error())
		return
	}

	conn := h.hub.Register(role, claims.UserID, ws)
	log.Printf("ws_connected role=%s user_id=%s", role, claims.UserID)
	defer func() {
		h.hub.Unregister(role, claims.UserID, conn)
		log.Printf("ws_disconnected role=%s user_id=%s", role, claims.UserID)
	}()

	done := make(chan struct{})
	defer close(done)
	go pingLoop(conn, done)

	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Inbound frames are ignored; reading drives pong handling and close detection.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws_read_failed user_id=%s error=%q", claims.UserID, err.Error())
			}
			return
		}
	}
}

func pingLoop(c *conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.writeMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
