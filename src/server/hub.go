package server

import (
	"encoding/json"
	"net/http"
	"time"

	"stock-dashboard/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------
// Every completed analysis is fanned out to all connected dashboard tabs, so
// several open tabs stay in sync. Pushes happen only as a side effect of a
// user-triggered run; the hub never fetches anything on its own.

// handleWebsockets is the main Hub loop
func (s *DashboardServer) handleWebsockets() {
	for {
		select {
		case client := <-s.register:
			s.stateMutex.Lock()
			s.clients[client] = struct{}{}
			latest := s.latestState
			s.stateMutex.Unlock()

			// Send the latest completed analysis on connect
			if latest != nil && latest.Result != nil {
				client.send <- latest
			}

		case client := <-s.unregister:
			s.stateMutex.Lock()
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
			s.stateMutex.Unlock()

		case state, ok := <-s.broadcast:
			if !ok {
				// Server shutting down
				return
			}

			s.stateMutex.Lock()
			s.latestState = state

			for client := range s.clients {
				select {
				case client.send <- state:
				default:
					// Client too slow, disconnect to prevent Hub blocking
					delete(s.clients, client)
					close(client.send)
				}
			}
			s.stateMutex.Unlock()
		}
	}
}

// -----------------------------------------------------------------------------

// Broadcast wraps a completed analysis and queues it for fan-out.
func (s *DashboardServer) Broadcast(result *models.MAnalysisResult) {
	state := &models.MDashboardState{
		Type:      "UPDATE",
		Result:    result,
		Timestamp: time.Now().Unix(),
	}

	// Non-blocking: with a full queue the freshest state wins later anyway.
	select {
	case s.broadcast <- state:
	default:
		s.Logger.Warning("Broadcast queue full, dropping update")
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *DashboardServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		// Buffered channel to prevent blocking the Hub loop
		send: make(chan *models.MDashboardState, 16),
	}

	s.register <- client

	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

type subscribeCommand struct {
	Command string `json:"command"`
}

// HandleClientMessage re-sends the latest state on an explicit subscribe.
func (s *DashboardServer) HandleClientMessage(client *Client, message []byte) {
	var cmd subscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	s.stateMutex.RLock()
	state := s.latestState
	s.stateMutex.RUnlock()

	if state == nil || state.Result == nil {
		return
	}

	select {
	case client.send <- state:
	default:
		// Client buffer full; the hub loop prunes slow clients on the next
		// broadcast.
	}
}
