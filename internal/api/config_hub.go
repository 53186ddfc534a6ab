package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// configHub pushes the config tree to connected dev-panel clients after
// every mutation, so a panel open next to the site previews toggles live.
// Single process only; cross-instance sync is out of scope.
type configHub struct {
	clients    map[*configClient]bool
	broadcast  chan []byte
	register   chan *configClient
	unregister chan *configClient
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	log        zerolog.Logger
}

type configClient struct {
	hub  *configHub
	conn *websocket.Conn
	send chan []byte
}

type configEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newConfigHub(log zerolog.Logger) *configHub {
	return &configHub{
		clients:    make(map[*configClient]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *configClient),
		unregister: make(chan *configClient),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log.With().Str("component", "config-hub").Logger(),
	}
}

func (h *configHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Debug().Msg("dev panel client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.log.Debug().Msg("dev panel client disconnected")

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *configHub) broadcastConfig(cfg any) {
	payload, _ := json.Marshal(cfg)
	data, _ := json.Marshal(configEvent{Type: "config", Payload: payload})
	select {
	case h.broadcast <- data:
	default:
	}
}

func (s *Server) handleConfigWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &configClient{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 64),
	}
	s.hub.register <- client

	// First frame carries the current tree so the panel renders immediately.
	payload, _ := json.Marshal(s.flags.Config())
	hello, _ := json.Marshal(configEvent{Type: "config", Payload: payload})
	client.send <- hello

	go client.writePump()
	go client.readPump()
}

func (c *configClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
		// The feed is one-way; inbound frames are drained and ignored.
	}
}

func (c *configClient) writePump() {
	defer c.conn.Close()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
