package live

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	model "auction-board/internal/models"
	"auction-board/internal/store"
	"auction-board/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 54 * time.Second
	sendBuffer   = 256
	maxReadBytes = 512
)

// Message types sent to clients
const (
	TypeSnapshot = "snapshot"
	TypeEvent    = "event"
)

// Message is the JSON frame written to clients
type Message struct {
	Type   string            `json:"type"`
	Action model.StoreAction `json:"action,omitempty"`
	Origin string            `json:"origin,omitempty"`
	Resync bool              `json:"resync,omitempty"`
	State  model.StoreState  `json:"state"`
}

// ClientObserver is notified when clients come and go
type ClientObserver interface {
	ClientConnected()
	ClientDisconnected()
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the board is served from the same origin; other modules may embed it
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub pushes shared store events to every connected WebSocket client.
// Each client first receives a snapshot, then every later event in order.
type Hub struct {
	store    store.Store
	observer ClientObserver

	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	events     chan model.StoreEvent
	stats      chan chan int
	done       chan struct{}
}

// Client is one WebSocket connection
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	// lastVersion is only touched by the hub loop
	lastVersion uint64
}

// NewHub creates a hub for s; observer may be nil
func NewHub(s store.Store, observer ClientObserver) *Hub {
	return &Hub{
		store:      s,
		observer:   observer,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan model.StoreEvent, sendBuffer),
		stats:      make(chan chan int),
		done:       make(chan struct{}),
	}
}

// Run subscribes to the store and serves clients until ctx is done.
// This is a blocking operation - run it in a goroutine.
func (h *Hub) Run(ctx context.Context) error {
	unsubscribe := h.store.Subscribe(func(ev model.StoreEvent) {
		select {
		case h.events <- ev:
		case <-h.done:
		}
	})
	defer func() {
		unsubscribe()
		close(h.done)
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case c := <-h.register:
			h.add(ctx, c)

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case ev := <-h.events:
			h.broadcast(ev)

		case reply := <-h.stats:
			reply <- len(h.clients)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	reply := make(chan int, 1)
	select {
	case h.stats <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// ServeWS handles GET /ws
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("live: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	client := &Client{
		ID:   utils.GenerateID(),
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (h *Hub) add(ctx context.Context, c *Client) {
	state, err := h.store.State(ctx)
	if err != nil {
		utils.Error("live: failed to read snapshot", map[string]any{"client_id": c.ID, "error": err.Error()})
		close(c.Send)
		return
	}

	h.clients[c] = struct{}{}
	c.lastVersion = state.Version
	h.send(c, Message{Type: TypeSnapshot, State: state})

	if h.observer != nil {
		h.observer.ClientConnected()
	}
	utils.Info("live: client connected", map[string]any{"client_id": c.ID, "clients": len(h.clients)})
}

func (h *Hub) drop(c *Client) {
	delete(h.clients, c)
	close(c.Send)

	if h.observer != nil {
		h.observer.ClientDisconnected()
	}
	utils.Info("live: client disconnected", map[string]any{"client_id": c.ID, "clients": len(h.clients)})
}

func (h *Hub) broadcast(ev model.StoreEvent) {
	msg := Message{Type: TypeEvent, Action: ev.Action, Origin: ev.Origin, Resync: ev.Resync, State: ev.State}
	for c := range h.clients {
		// already covered by the client's snapshot
		if ev.State.Version <= c.lastVersion && !ev.Resync {
			continue
		}
		c.lastVersion = ev.State.Version
		h.send(c, msg)
	}
}

// send never blocks the hub; a client whose buffer is full is dropped
func (h *Hub) send(c *Client, msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		utils.Error("live: failed to encode message", map[string]any{"error": err.Error()})
		return
	}

	select {
	case c.Send <- payload:
	default:
		utils.Warn("live: dropping slow client", map[string]any{"client_id": c.ID})
		h.drop(c)
	}
}

// writePump pumps messages from the Send channel to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump keeps the read deadline fresh and unregisters the client on disconnect.
// Clients have nothing to say; incoming frames are discarded.
func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}()

	c.Conn.SetReadLimit(maxReadBytes)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				utils.Warn("live: websocket read error", map[string]any{"client_id": c.ID, "error": err.Error()})
			}
			return
		}
	}
}
