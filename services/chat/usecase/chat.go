package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/piresc/quickconnect/internal/pkg/constants"
	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/piresc/quickconnect/internal/pkg/metrics"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/chat"
)

const subscriberBuffer = 32

type conversation struct {
	id          string
	request     models.EmergencyRequest
	messages    []models.Message
	pending     int
	subscribers map[chan models.ChatEvent]struct{}
}

func (c *conversation) snapshot() *models.Conversation {
	messages := make([]models.Message, len(c.messages))
	copy(messages, c.messages)
	return &models.Conversation{
		ID:       c.id,
		Request:  c.request,
		Messages: messages,
		Typing:   c.pending > 0,
	}
}

// ChatUC implements chat.ChatUC. Conversations live in memory and expire
// after the configured TTL of inactivity.
type ChatUC struct {
	mu         sync.Mutex
	store      *gocache.Cache
	ackDelay   time.Duration
	replyDelay time.Duration
	respond    Responder
	metrics    *metrics.Metrics
	now        func() time.Time

	timers map[*time.Timer]struct{}
	lastID int64
	closed bool
}

// NewChatUC creates the chat hub
func NewChatUC(cfg *models.Config, m *metrics.Metrics) *ChatUC {
	ttl := cfg.Chat.TTL
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := cfg.Chat.TTL
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}

	uc := &ChatUC{
		store:      gocache.New(ttl, cleanup),
		ackDelay:   cfg.Chat.AckDelay,
		replyDelay: cfg.Chat.ReplyDelay,
		respond:    RandomReply,
		metrics:    m,
		now:        models.Now,
		timers:     make(map[*time.Timer]struct{}),
	}
	uc.store.OnEvicted(uc.onEvicted)
	return uc
}

func key(chatID string) string {
	return fmt.Sprintf(constants.KeyConversation, chatID)
}

// lookup must be called with uc.mu held
func (uc *ChatUC) lookup(chatID string) (*conversation, error) {
	v, ok := uc.store.Get(key(chatID))
	if !ok {
		return nil, chat.ErrChatNotFound
	}
	return v.(*conversation), nil
}

// nextID returns prefix-<unix nanos>, strictly increasing across the hub.
// Must be called with uc.mu held.
func (uc *ChatUC) nextID(prefix string) string {
	n := uc.now().UnixNano()
	if n <= uc.lastID {
		n = uc.lastID + 1
	}
	uc.lastID = n
	return fmt.Sprintf("%s-%d", prefix, n)
}

// schedule runs fn with uc.mu held after d. Must be called with uc.mu held.
func (uc *ChatUC) schedule(d time.Duration, fn func()) {
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		delete(uc.timers, t)
		if uc.closed {
			return
		}
		fn()
	})
	uc.timers[t] = struct{}{}
}

// publish must be called with uc.mu held
func (uc *ChatUC) publish(c *conversation, ev models.ChatEvent) {
	for ch := range c.subscribers {
		select {
		case ch <- ev:
		default:
			logger.Warn("Dropping chat event for slow subscriber",
				logger.String("chat_id", c.id),
				logger.String("event", ev.Event))
		}
	}
}

// appendMessage must be called with uc.mu held
func (uc *ChatUC) appendMessage(c *conversation, msg models.Message) {
	c.messages = append(c.messages, msg)
	uc.publish(c, models.ChatEvent{Event: constants.EventChatMessage, Message: &msg})
	uc.metrics.ChatMessage(string(msg.Sender))
}

// setPending must be called with uc.mu held
func (uc *ChatUC) setPending(c *conversation, delta int) {
	was := c.pending > 0
	c.pending += delta
	typing := c.pending > 0
	if typing != was {
		uc.publish(c, models.ChatEvent{Event: constants.EventChatTyping, Typing: &typing})
	}
}

// touch extends the conversation lifetime. Must be called with uc.mu held.
func (uc *ChatUC) touch(c *conversation) {
	uc.store.Set(key(c.id), c, gocache.DefaultExpiration)
}

// hospitalReply delivers a hospital message once its delay elapses
func (uc *ChatUC) hospitalReply(chatID string, id func() string, text func() string) func() {
	return func() {
		c, err := uc.lookup(chatID)
		if err != nil {
			return
		}
		uc.appendMessage(c, models.Message{
			ID:        id(),
			Text:      text(),
			Sender:    models.SenderHospital,
			Timestamp: uc.now(),
		})
		uc.setPending(c, -1)
	}
}

// Open starts the conversation for a submitted alert. The hospital
// acknowledges it after the configured delay.
func (uc *ChatUC) Open(ctx context.Context, request models.EmergencyRequest) (*models.Conversation, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.closed {
		return nil, fmt.Errorf("chat hub is closed")
	}

	hospitalName := request.SelectedHospital.Name
	c := &conversation{
		id:          uuid.New().String(),
		request:     request,
		subscribers: make(map[chan models.ChatEvent]struct{}),
	}
	uc.appendMessage(c, models.Message{
		ID:        "system-1",
		Text:      alertSentText(hospitalName),
		Sender:    models.SenderHospital,
		Timestamp: uc.now(),
	})
	uc.setPending(c, 1)
	uc.touch(c)

	uc.schedule(uc.ackDelay, uc.hospitalReply(c.id,
		func() string { return "hospital-1" },
		func() string { return acknowledgementText(hospitalName) }))

	logger.Info("Chat opened",
		logger.String("chat_id", c.id),
		logger.String("request_id", request.ID),
		logger.String("hospital_id", request.SelectedHospital.ID))
	return c.snapshot(), nil
}

// Send appends a user message and schedules a hospital reply
func (uc *ChatUC) Send(ctx context.Context, chatID string, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, chat.ErrEmptyMessage
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	c, err := uc.lookup(chatID)
	if err != nil {
		return nil, err
	}

	msg := models.Message{
		ID:        uc.nextID("user"),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: uc.now(),
	}
	uc.appendMessage(c, msg)
	uc.setPending(c, 1)
	uc.touch(c)

	uc.schedule(uc.replyDelay, uc.hospitalReply(chatID,
		func() string { return uc.nextID("hospital") },
		uc.respond))

	return &msg, nil
}

// Get returns a snapshot of the conversation
func (uc *ChatUC) Get(ctx context.Context, chatID string) (*models.Conversation, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c, err := uc.lookup(chatID)
	if err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}

// Subscribe registers a subscriber that receives the history followed by
// live events. The channel is closed when ctx is done, the chat expires or
// the hub closes.
func (uc *ChatUC) Subscribe(ctx context.Context, chatID string) (<-chan models.ChatEvent, error) {
	uc.mu.Lock()
	c, err := uc.lookup(chatID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}

	ch := make(chan models.ChatEvent, subscriberBuffer)
	ch <- models.ChatEvent{Event: constants.EventChatHistory, Conversation: c.snapshot()}
	c.subscribers[ch] = struct{}{}
	uc.mu.Unlock()

	go func() {
		<-ctx.Done()
		uc.unsubscribe(c, ch)
	}()
	return ch, nil
}

func (uc *ChatUC) unsubscribe(c *conversation, ch chan models.ChatEvent) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := c.subscribers[ch]; ok {
		delete(c.subscribers, ch)
		close(ch)
	}
}

func (uc *ChatUC) onEvicted(_ string, v interface{}) {
	c, ok := v.(*conversation)
	if !ok {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.closeSubscribers(c)
	logger.Debug("Chat expired", logger.String("chat_id", c.id))
}

// closeSubscribers must be called with uc.mu held
func (uc *ChatUC) closeSubscribers(c *conversation) {
	for ch := range c.subscribers {
		delete(c.subscribers, ch)
		close(ch)
	}
}

// Close stops pending replies and ends every subscription
func (uc *ChatUC) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.closed {
		return
	}
	uc.closed = true

	for t := range uc.timers {
		t.Stop()
	}
	uc.timers = make(map[*time.Timer]struct{})

	for _, item := range uc.store.Items() {
		if c, ok := item.Object.(*conversation); ok {
			uc.closeSubscribers(c)
		}
	}
}
