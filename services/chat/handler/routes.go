package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/services/chat/handler/http"
	"github.com/piresc/quickconnect/services/chat/handler/websocket"
)

// Handler coordinates the chat HTTP and websocket handlers
type Handler struct {
	chatHandler   *http.ChatHandler
	chatWSHandler *websocket.ChatWSHandler
}

// NewHandler creates the chat handler set
func NewHandler(chatHandler *http.ChatHandler, chatWSHandler *websocket.ChatWSHandler) *Handler {
	return &Handler{
		chatHandler:   chatHandler,
		chatWSHandler: chatWSHandler,
	}
}

// RegisterRoutes registers chat routes on the API group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/chats")
	g.GET("/:id", h.chatHandler.GetChat)
	g.POST("/:id/messages", h.chatHandler.SendMessage)
	g.GET("/:id/ws", h.chatWSHandler.Connect)
}
