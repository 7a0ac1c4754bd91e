package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/constants"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/models"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	pkgws "github.com/piresc/quickconnect/internal/pkg/websocket"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/chat"
)

// ChatWSHandler streams a chat over a websocket
type ChatWSHandler struct {
	chatUC  chat.ChatUC
	manager *pkgws.Manager
}

// NewChatWSHandler creates a new websocket chat handler
func NewChatWSHandler(chatUC chat.ChatUC, manager *pkgws.Manager) *ChatWSHandler {
	return &ChatWSHandler{chatUC: chatUC, manager: manager}
}

// Connect handles GET /chats/:id/ws
func (h *ChatWSHandler) Connect(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "ChatWS.Connect")

	chatID := c.Param("id")
	if _, err := h.chatUC.Get(c.Request().Context(), chatID); err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			return utils.NotificationErrorResponse(c, http.StatusNotFound, err.Error(),
				models.NewAlert("Error", "No emergency information found."))
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to open chat stream")
	}

	return h.manager.HandleConnection(c, chatID, func(client *pkgws.Client) error {
		ctx, cancel := context.WithCancel(c.Request().Context())
		defer cancel()
		return h.serve(ctx, client)
	})
}

func (h *ChatWSHandler) serve(ctx context.Context, client *pkgws.Client) error {
	events, err := h.chatUC.Subscribe(ctx, client.ChatID)
	if err != nil {
		_ = h.manager.SendErrorMessage(client, constants.ErrorChatNotFound, err.Error())
		return nil
	}

	logger.Info("Chat viewer connected",
		logger.String("chat_id", client.ChatID),
		logger.String("client_id", client.ID),
		logger.Int("viewers", h.manager.ClientCount(client.ChatID)))

	go h.forward(ctx, client, events)

	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				logger.Warn("Chat socket closed unexpectedly",
					logger.String("chat_id", client.ChatID),
					logger.Err(err))
			}
			return nil
		}
		h.handleMessage(ctx, client, data)
	}
}

// forward writes hub events to the socket until the subscription ends.
// A subscription the hub ended (chat expired or shutdown) closes the socket.
func (h *ChatWSHandler) forward(ctx context.Context, client *pkgws.Client, events <-chan models.ChatEvent) {
	for ev := range events {
		if err := h.manager.SendMessage(client, ev.Event, payload(ev)); err != nil {
			logger.Warn("Failed to write chat event",
				logger.String("chat_id", client.ChatID),
				logger.String("event", ev.Event),
				logger.Err(err))
		}
	}
	if ctx.Err() != nil {
		return
	}

	logger.Info("Chat ended, closing viewer",
		logger.String("chat_id", client.ChatID),
		logger.String("client_id", client.ID))
	_ = h.manager.SendErrorMessage(client, constants.ErrorChatNotFound, "chat has ended")
	_ = h.manager.Close(client, "chat ended")
}

func payload(ev models.ChatEvent) interface{} {
	switch ev.Event {
	case constants.EventChatHistory:
		return ev.Conversation
	case constants.EventChatMessage:
		return ev.Message
	case constants.EventChatTyping:
		return map[string]bool{"typing": ev.Typing != nil && *ev.Typing}
	default:
		return ev
	}
}

func (h *ChatWSHandler) handleMessage(ctx context.Context, client *pkgws.Client, data []byte) {
	var msg models.WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
		return
	}

	switch msg.Event {
	case constants.EventPing:
		_ = h.manager.SendMessage(client, constants.EventPong, nil)

	case constants.EventChatSend:
		var req models.SendMessageRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid chat message")
			return
		}
		if _, err := h.chatUC.Send(ctx, client.ChatID, req.Text); err != nil {
			switch {
			case errors.Is(err, chat.ErrEmptyMessage):
				_ = h.manager.SendErrorMessage(client, constants.ErrorValidationFailed, err.Error())
			case errors.Is(err, chat.ErrChatNotFound):
				_ = h.manager.SendErrorMessage(client, constants.ErrorChatNotFound, err.Error())
			default:
				logger.Error("Failed to send chat message",
					logger.String("chat_id", client.ChatID),
					logger.Err(err))
				_ = h.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to send message")
			}
		}

	default:
		_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}
