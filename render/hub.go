package render

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"catan/game"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Message is the JSON envelope of every event sent to observers.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type location struct {
	Line  int `json:"line"`
	Index int `json:"index"`
}

func toLocation(l game.Location) location {
	return location{Line: l.Line, Index: l.Index}
}

// client is one connected observer.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub is a Renderer that broadcasts every render call to the connected
// websocket observers. Rendering never blocks the game: events are dropped
// while the broadcast buffer is full.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{}
	connected  atomic.Int32
}

var _ game.Renderer = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run dispatches registrations and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.connected.Store(0)
			return

		case c := <-h.register:
			h.clients[c] = true
			h.connected.Add(1)
			log.Debug().Msgf("observer connected from %s", c.conn.RemoteAddr())

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.connected.Add(-1)
			}

		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// slow observer
					close(c.send)
					delete(h.clients, c)
					h.connected.Add(-1)
				}
			}
		}
	}
}

// Connected returns the number of registered observers.
func (h *Hub) Connected() int {
	return int(h.connected.Load())
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeHTTP upgrades the request to a websocket and registers the observer.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, 256)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump only watches for the connection closing; observers send nothing.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("observer connection lost")
			}
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (h *Hub) publish(kind string, payload any) {
	data, err := json.Marshal(Message{Type: kind, Payload: payload})
	if err != nil {
		log.Error().Err(err).Msgf("failed to encode %s event", kind)
		return
	}
	select {
	case h.broadcast <- data:
	default:
	}
}

func (h *Hub) Action(name string) {
	h.publish("action", map[string]any{"name": name})
}

func (h *Hub) Settlement(player int, at game.Location) {
	h.publish("settlement", map[string]any{"player": player, "location": toLocation(at)})
}

func (h *Hub) City(player int, at game.Location) {
	h.publish("city", map[string]any{"player": player, "location": toLocation(at)})
}

func (h *Hub) Road(player int, from, to game.Location) {
	h.publish("road", map[string]any{"player": player, "from": toLocation(from), "to": toLocation(to)})
}

func (h *Hub) Resources(player int, resources game.Bundle) {
	h.publish("resources", map[string]any{"player": player, "resources": resources.Log()})
}

func (h *Hub) Highlight(at game.Location) {
	h.publish("highlight", map[string]any{"location": toLocation(at)})
}
