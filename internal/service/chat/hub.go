// Package chat implements the club chat: persisted history plus a
// websocket relay hub for live delivery, presence and typing indicators.
package chat

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
)

// Hub commands. A single queue keeps them totally ordered, so a join sent
// right after a registration can never be processed first.
type registerCmd struct{ client *Client }

type unregisterCmd struct{ client *Client }

type joinCmd struct {
	connID   string
	memberID string
	name     string
}

// frameCmd is one serialised event queued for fan-out. A non-empty except
// skips that connection, used for typing relays.
type frameCmd struct {
	payload []byte
	except  string
}

// Hub owns every live websocket connection and fans events out to them.
// All state is confined to the Run goroutine; other goroutines talk to the
// hub through its command queue only.
type Hub struct {
	clients map[string]*Client
	cmds    chan any
	quit    chan struct{}
}

// NewHub creates a relay hub. Call Run in its own goroutine before serving
// connections.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		cmds:    make(chan any, constants.CHANNEL_SIZE),
		quit:    make(chan struct{}),
	}
}

// Run is the hub's event loop. It exits when Close is called, dropping
// every connection on the way out.
func (h *Hub) Run() {
	zap.L().Info("chat hub started")
	for {
		select {
		case cmd := <-h.cmds:
			h.handle(cmd)
		case <-h.quit:
			for id, c := range h.clients {
				delete(h.clients, id)
				close(c.send)
			}
			zap.L().Info("chat hub stopped")
			return
		}
	}
}

func (h *Hub) handle(cmd any) {
	switch cmd := cmd.(type) {
	case registerCmd:
		h.clients[cmd.client.id] = cmd.client
		zap.L().Debug("chat connection registered", zap.String("connId", cmd.client.id))

	case unregisterCmd:
		c, ok := h.clients[cmd.client.id]
		if !ok {
			return
		}
		joined := c.memberID != ""
		delete(h.clients, c.id)
		close(c.send)
		zap.L().Debug("chat connection dropped", zap.String("connId", c.id))
		if joined {
			h.pushPresence()
		}

	case joinCmd:
		c, ok := h.clients[cmd.connID]
		if !ok {
			return
		}
		c.memberID = cmd.memberID
		c.name = cmd.name
		zap.L().Info("member joined chat",
			zap.String("memberId", cmd.memberID),
			zap.String("name", cmd.name))
		h.pushPresence()

	case frameCmd:
		h.deliver(cmd.payload, cmd.except)
	}
}

// Close stops the event loop and drops every connection.
func (h *Hub) Close() {
	close(h.quit)
}

// Broadcast queues an event for every live connection.
func (h *Hub) Broadcast(evt respond.ChatEventRespond) {
	h.enqueue(evt, "")
}

// RelayExcept queues an event for every live connection but one, used to
// echo typing indicators to everyone except their originator.
func (h *Hub) RelayExcept(connID string, evt respond.ChatEventRespond) {
	h.enqueue(evt, connID)
}

func (h *Hub) enqueue(evt respond.ChatEventRespond, except string) {
	payload, err := json.Marshal(evt)
	if err != nil {
		zap.L().Error("marshalling chat event failed", zap.Error(err))
		return
	}
	h.cmds <- frameCmd{payload: payload, except: except}
}

// deliver fans a payload out to the live connections. A connection whose
// send buffer is full is dropped rather than allowed to stall the loop.
func (h *Hub) deliver(payload []byte, except string) {
	for id, c := range h.clients {
		if id == except {
			continue
		}
		select {
		case c.send <- payload:
		default:
			delete(h.clients, id)
			close(c.send)
			zap.L().Warn("dropping slow chat connection", zap.String("connId", id))
		}
	}
}

// pushPresence broadcasts the current number of distinct joined members.
// Runs inside the event loop, so it delivers directly instead of queueing.
func (h *Hub) pushPresence() {
	members := make(map[string]struct{}, len(h.clients))
	for _, c := range h.clients {
		if c.memberID != "" {
			members[c.memberID] = struct{}{}
		}
	}
	count := len(members)
	payload, err := json.Marshal(respond.ChatEventRespond{
		Event: respond.EventUsersOnline,
		Count: &count,
	})
	if err != nil {
		zap.L().Error("marshalling presence event failed", zap.Error(err))
		return
	}
	h.deliver(payload, "")
}
