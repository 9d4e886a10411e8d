package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
)

// registerChatRoutes registers the chat history routes and the websocket
// upgrade endpoint.
func (rt *Router) registerChatRoutes(api *gin.RouterGroup) {
	chat := api.Group("/chat")

	// Browsers cannot attach an Authorization header to the websocket
	// handshake; identity arrives in the join_chat frame instead.
	chat.GET("/ws", rt.handlers.Chat.Connect)

	authed := chat.Group("")
	authed.Use(middleware.JWTAuth())
	{
		authed.GET("/messages", rt.handlers.Chat.History)
		authed.POST("/messages", rt.handlers.Chat.Post)
		authed.DELETE("/messages/:id", rt.handlers.Chat.Delete)
	}
}
