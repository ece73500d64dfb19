package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go-splendor/dto"
	"go-splendor/game"
	"go-splendor/middleware"
	"go-splendor/repository"
	"go-splendor/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	sendBuffer   = 32
	writeTimeout = 5 * time.Second
)

// Hub tracks websocket clients per game and pushes committed changes to them.
// It implements service.Publisher.
type Hub struct {
	sessions *service.SessionManager
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	rooms map[string]map[*client]struct{}
}

type client struct {
	gameID   string
	playerID string
	conn     *websocket.Conn
	send     chan []byte
	once     sync.Once
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		rooms: make(map[string]map[*client]struct{}),
	}
}

// Attach wires the hub to the session manager whose changes it receives.
func (h *Hub) Attach(sessions *service.SessionManager) {
	h.sessions = sessions
}

// Publish broadcasts events and the resulting state to everyone watching the game.
func (h *Hub) Publish(gameID string, state *game.GameState, events []game.Event) {
	msgType := dto.MessageEvents
	if len(events) == 0 {
		msgType = dto.MessageSync
	}
	data, err := json.Marshal(dto.ServerMessage{Type: msgType, GameID: gameID, State: state, Events: events})
	if err != nil {
		h.log.Error("marshal broadcast failed", zap.String("gameID", gameID), zap.Error(err))
		return
	}
	h.broadcast(gameID, data)
}

func (h *Hub) broadcast(gameID string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[gameID] {
		select {
		case c.send <- data:
		default:
			// 客户端太慢，断开
			h.log.Warn("dropping slow client", zap.String("gameID", gameID), zap.String("playerID", c.playerID))
			h.removeLocked(c)
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.gameID]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[c.gameID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	room := h.rooms[c.gameID]
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.gameID)
	}
	c.once.Do(func() { close(c.send) })
}

// ClientCount reports the connections watching a game.
func (h *Hub) ClientCount(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[gameID])
}

// HandleWebSocket upgrades the request for the authenticated player and streams the game
// named by the gameID query parameter. Unseated users may watch.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	gameID := c.Query("gameID")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": http.StatusBadRequest, "msg": "missing gameID"})
		return
	}
	state, err := h.sessions.GetState(c.Request.Context(), gameID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"status_code": http.StatusNotFound, "msg": "game not found"})
		return
	}
	if err != nil {
		h.log.Error("load game for websocket failed", zap.String("gameID", gameID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status_code": http.StatusInternalServerError, "msg": "internal error"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	cl := &client{
		gameID:   gameID,
		playerID: middleware.UserID(c),
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
	}
	h.register(cl)
	h.sendTo(cl, dto.ServerMessage{Type: dto.MessageSync, GameID: gameID, State: state})

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Info("websocket write failed", zap.String("playerID", c.playerID), zap.Error(err))
			h.unregister(c)
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Info("websocket read failed", zap.String("playerID", c.playerID), zap.Error(err))
			}
			return
		}
		var msg dto.ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.sendError(c, &game.Rejection{Kind: game.KindInvalidAction, Message: "message is not valid JSON"})
			continue
		}
		handler, ok := messageHandlers[msg.Type]
		if !ok {
			h.sendError(c, &game.Rejection{
				Kind:     game.KindInvalidAction,
				Message:  "unknown message type",
				Metadata: map[string]any{"type": msg.Type},
			})
			continue
		}
		handler(context.Background(), h, c, msg)
	}
}

// sendTo queues a message for one client only.
func (h *Hub) sendTo(c *client, msg dto.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("marshal message failed", zap.Error(err))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[c.gameID][c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
		h.removeLocked(c)
	}
}

func (h *Hub) sendError(c *client, rej *game.Rejection) {
	h.sendTo(c, dto.ServerMessage{Type: dto.MessageError, GameID: c.gameID, Error: rej})
}
