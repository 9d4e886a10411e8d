package chat

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
)

// Client is one live websocket connection held by the hub.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// Presence fields, written by the hub loop on join_chat. Empty until
	// the connection identifies itself.
	memberID string
	name     string
}

// ServeWS registers an upgraded websocket connection with the hub and
// starts its read and write loops. Ownership of conn passes to the client.
func ServeWS(hub *Hub, conn *websocket.Conn) {
	c := &Client{
		id:   uuid.NewString(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, constants.CHANNEL_SIZE),
	}
	hub.cmds <- registerCmd{client: c}
	go c.writeLoop()
	go c.readLoop()
}

// readLoop consumes inbound frames until the connection errors, then
// unregisters. Malformed and unknown frames are discarded.
func (c *Client) readLoop() {
	defer func() {
		c.hub.cmds <- unregisterCmd{client: c}
		c.conn.Close()
	}()
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Warn("chat connection closed unexpectedly",
					zap.String("connId", c.id), zap.Error(err))
			}
			return
		}
		var req request.ChatEventRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			zap.L().Warn("discarding malformed chat frame",
				zap.String("connId", c.id), zap.Error(err))
			continue
		}
		switch req.Event {
		case request.EventJoinChat:
			c.hub.cmds <- joinCmd{connID: c.id, memberID: req.MemberID, name: req.Name}
		case request.EventTyping:
			c.hub.RelayExcept(c.id, respond.ChatEventRespond{
				Event:    respond.EventUserTyping,
				MemberID: req.MemberID,
				Name:     req.Name,
			})
		case request.EventStopTyping:
			c.hub.RelayExcept(c.id, respond.ChatEventRespond{
				Event:    respond.EventUserStopTyping,
				MemberID: req.MemberID,
				Name:     req.Name,
			})
		default:
			zap.L().Debug("ignoring unknown chat event",
				zap.String("event", req.Event))
		}
	}
}

// writeLoop drains the send buffer onto the wire. The hub closing the send
// channel ends the loop and the connection.
func (c *Client) writeLoop() {
	defer c.conn.Close()
	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
