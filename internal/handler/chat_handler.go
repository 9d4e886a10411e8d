// Package handler provides the HTTP request handlers.
// This file handles chat history and the websocket upgrade.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/chat"
)

// upgrader promotes chat connections. Origin enforcement happens in the
// CORS layer; the browser clients live on other hosts.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ChatHandler handles chat history requests and websocket upgrades.
type ChatHandler struct {
	chatSvc service.ChatService
	hub     *chat.Hub
}

// NewChatHandler creates the chat handler.
func NewChatHandler(chatSvc service.ChatService, hub *chat.Hub) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc, hub: hub}
}

// History returns recent messages in chronological order.
// GET /api/chat/messages?limit=&offset=
func (h *ChatHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	messages, err := h.chatSvc.ListMessages(limit, offset)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, messages)
}

// Post persists a message and broadcasts it to every live connection.
// POST /api/chat/messages
// Body: request.SendChatMessageRequest
func (h *ChatHandler) Post(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req request.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	message, err := h.chatSvc.PostMessage(principal, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, message)
}

// Delete removes a message. Sender or admin only.
// DELETE /api/chat/messages/:id
func (h *ChatHandler) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, err := pathID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.chatSvc.DeleteMessage(principal, id); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Connect upgrades the request to a websocket and hands the connection to
// the relay hub. Presence starts when the client sends join_chat.
// GET /api/chat/ws
func (h *ChatHandler) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	chat.ServeWS(h.hub, conn)
}
