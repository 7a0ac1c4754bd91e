package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/models"
	nrpkg "github.com/piresc/quickconnect/internal/pkg/newrelic"
	"github.com/piresc/quickconnect/internal/utils"
	"github.com/piresc/quickconnect/services/chat"
)

// ChatHandler handles HTTP requests for the hospital chat
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{chatUC: chatUC}
}

func notFound(c echo.Context) error {
	return utils.NotificationErrorResponse(c, http.StatusNotFound, chat.ErrChatNotFound.Error(),
		models.NewAlert("Error", "No emergency information found."))
}

// GetChat handles GET /chats/:id
func (h *ChatHandler) GetChat(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Chat.GetChat")

	conv, err := h.chatUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			return notFound(c)
		}
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to get chat", logger.String("chat_id", c.Param("id")), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve chat")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Chat retrieved successfully", conv)
}

// SendMessage handles POST /chats/:id/messages
func (h *ChatHandler) SendMessage(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Chat.SendMessage")

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	msg, err := h.chatUC.Send(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, chat.ErrChatNotFound):
			return notFound(c)
		}
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Failed to send chat message", logger.String("chat_id", c.Param("id")), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to send message")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent successfully", msg)
}
