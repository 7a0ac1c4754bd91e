package chat

import (
	"context"

	"github.com/piresc/quickconnect/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/quickconnect/services/chat ChatUC

// ChatUC runs the simulated conversation with the selected hospital
type ChatUC interface {
	Open(ctx context.Context, request models.EmergencyRequest) (*models.Conversation, error)
	Send(ctx context.Context, chatID string, text string) (*models.Message, error)
	Get(ctx context.Context, chatID string) (*models.Conversation, error)
	// Subscribe streams chat events until ctx is done or the chat expires.
	// The first event is always the conversation history.
	Subscribe(ctx context.Context, chatID string) (<-chan models.ChatEvent, error)
}
