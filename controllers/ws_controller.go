package controllers

import (
	"log"
	"net/http"
	"time"

	"hotel-reservation-api/realtime"
	"hotel-reservation-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 54 * time.Second
)

type WSController struct {
	Hub *realtime.Hub
}

func NewWSController(hub *realtime.Hub) *WSController {
	return &WSController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS policy is enforced by the router middleware; the dashboard
	// connects from configured origins only.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Connect (GET /api/admin/ws?token=) upgrades an authenticated admin
// session into the admin broadcast group.
func (wc *WSController) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Missing token.")
		return
	}
	claims, err := utils.ValidateToken(token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed for %s: %v", claims.Username, err)
		return
	}

	client := &realtime.Client{
		ID:    uuid.NewString(),
		Admin: true,
		Send:  make(chan []byte, 16),
	}
	wc.Hub.Register(client)

	go wc.writePump(conn, client)
	go wc.readPump(conn, client)
}

// writePump drains the client's send channel onto the socket and keeps the
// connection alive with pings.
func (wc *WSController) writePump(conn *websocket.Conn, client *realtime.Client) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames (the channel is push-only) and
// unregisters on disconnect.
func (wc *WSController) readPump(conn *websocket.Conn, client *realtime.Client) {
	defer func() {
		wc.Hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
