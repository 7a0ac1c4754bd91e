package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/piresc/quickconnect/internal/pkg/constants"
	"github.com/piresc/quickconnect/internal/pkg/metrics"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/chat"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() models.EmergencyRequest {
	return models.EmergencyRequest{
		ID:   "req-1",
		Type: models.EmergencyTypeAccident,
		UserLocation: models.UserLocation{
			Latitude:  37.7749,
			Longitude: -122.4194,
			Address:   "1 Market St",
		},
		SelectedHospital: models.Hospital{ID: "1", Name: "City General Hospital"},
		Timestamp:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestHub(t *testing.T, ack, reply time.Duration) *ChatUC {
	uc := NewChatUC(&models.Config{Chat: models.ChatConfig{
		AckDelay:   ack,
		ReplyDelay: reply,
		TTL:        time.Minute,
	}}, nil)
	uc.respond = func() string { return "Our team is on the way." }
	t.Cleanup(uc.Close)
	return uc
}

func TestOpen_SeedsSystemMessage(t *testing.T) {
	uc := newTestHub(t, time.Hour, time.Hour)

	conv, err := uc.Open(context.Background(), testRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, conv.ID)
	assert.Equal(t, "req-1", conv.Request.ID)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, "system-1", conv.Messages[0].ID)
	assert.Equal(t, models.SenderHospital, conv.Messages[0].Sender)
	assert.Equal(t, "Your emergency alert has been sent to City General Hospital. Please stay on this page for updates.", conv.Messages[0].Text)
	assert.True(t, conv.Typing)
}

func TestOpen_HospitalAcknowledges(t *testing.T) {
	uc := newTestHub(t, 10*time.Millisecond, time.Hour)
	ctx := context.Background()

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		got, err := uc.Get(ctx, conv.ID)
		return err == nil && len(got.Messages) == 2
	}, time.Second, 5*time.Millisecond)

	got, err := uc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "hospital-1", got.Messages[1].ID)
	assert.Equal(t, "This is the emergency response team at City General Hospital. We have received your alert and dispatched help. Please provide any additional information about your situation.", got.Messages[1].Text)
	assert.False(t, got.Typing)
}

func TestSend_AppendsUserMessageAndReply(t *testing.T) {
	uc := newTestHub(t, 0, 10*time.Millisecond)
	ctx := context.Background()

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		got, _ := uc.Get(ctx, conv.ID)
		return len(got.Messages) == 2
	}, time.Second, 5*time.Millisecond)

	msg, err := uc.Send(ctx, conv.ID, "  I am bleeding  ")
	require.NoError(t, err)
	assert.Equal(t, "I am bleeding", msg.Text)
	assert.Equal(t, models.SenderUser, msg.Sender)
	assert.True(t, strings.HasPrefix(msg.ID, "user-"))

	got, err := uc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.True(t, got.Typing)

	assert.Eventually(t, func() bool {
		got, _ := uc.Get(ctx, conv.ID)
		return len(got.Messages) == 4
	}, time.Second, 5*time.Millisecond)

	got, err = uc.Get(ctx, conv.ID)
	require.NoError(t, err)
	reply := got.Messages[3]
	assert.True(t, strings.HasPrefix(reply.ID, "hospital-"))
	assert.Equal(t, "Our team is on the way.", reply.Text)
	assert.Equal(t, models.SenderHospital, reply.Sender)
	assert.False(t, got.Typing)
}

func TestSend_Errors(t *testing.T) {
	uc := newTestHub(t, time.Hour, time.Hour)
	ctx := context.Background()

	_, err := uc.Send(ctx, "missing", "hello")
	assert.ErrorIs(t, err, chat.ErrChatNotFound)

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)
	_, err = uc.Send(ctx, conv.ID, "   ")
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)

	got, err := uc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 1)
}

func TestSend_UniqueIDs(t *testing.T) {
	uc := newTestHub(t, time.Hour, time.Hour)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }
	ctx := context.Background()

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		msg, err := uc.Send(ctx, conv.ID, "update")
		require.NoError(t, err)
		assert.False(t, seen[msg.ID], msg.ID)
		seen[msg.ID] = true
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := newTestHub(t, time.Hour, time.Hour)

	_, err := uc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, chat.ErrChatNotFound)
}

func TestSubscribe_ReceivesHistoryAndEvents(t *testing.T) {
	uc := newTestHub(t, 50*time.Millisecond, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)

	events, err := uc.Subscribe(ctx, conv.ID)
	require.NoError(t, err)

	history := <-events
	assert.Equal(t, constants.EventChatHistory, history.Event)
	require.NotNil(t, history.Conversation)
	assert.Len(t, history.Conversation.Messages, 1)

	msg := <-events
	assert.Equal(t, constants.EventChatMessage, msg.Event)
	require.NotNil(t, msg.Message)
	assert.Equal(t, "hospital-1", msg.Message.ID)

	typing := <-events
	assert.Equal(t, constants.EventChatTyping, typing.Event)
	require.NotNil(t, typing.Typing)
	assert.False(t, *typing.Typing)
}

func TestSubscribe_ClosedOnCancel(t *testing.T) {
	uc := newTestHub(t, time.Hour, time.Hour)
	conv, err := uc.Open(context.Background(), testRequest())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := uc.Subscribe(ctx, conv.ID)
	require.NoError(t, err)
	<-events

	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestSubscribe_NotFound(t *testing.T) {
	uc := newTestHub(t, time.Hour, time.Hour)

	_, err := uc.Subscribe(context.Background(), "missing")

	assert.ErrorIs(t, err, chat.ErrChatNotFound)
}

func TestClose_StopsPendingReplies(t *testing.T) {
	uc := newTestHub(t, 20*time.Millisecond, time.Hour)
	ctx := context.Background()

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)
	events, err := uc.Subscribe(ctx, conv.ID)
	require.NoError(t, err)
	<-events

	uc.Close()

	_, ok := <-events
	assert.False(t, ok)

	time.Sleep(40 * time.Millisecond)
	got, err := uc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 1)

	_, err = uc.Open(ctx, testRequest())
	assert.Error(t, err)
}

func TestChat_ConcurrentSends(t *testing.T) {
	uc := newTestHub(t, 0, time.Millisecond)
	ctx := context.Background()

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Send(ctx, conv.ID, "status?")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool {
		got, _ := uc.Get(ctx, conv.ID)
		return len(got.Messages) == 22 && !got.Typing
	}, time.Second, 5*time.Millisecond)
}

func TestChat_RecordsMetrics(t *testing.T) {
	m := metrics.NewMetrics()
	uc := NewChatUC(&models.Config{Chat: models.ChatConfig{AckDelay: time.Hour, ReplyDelay: time.Hour, TTL: time.Minute}}, m)
	defer uc.Close()
	ctx := context.Background()

	conv, err := uc.Open(ctx, testRequest())
	require.NoError(t, err)
	_, err = uc.Send(ctx, conv.ID, "hello")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "quickconnect_chat_messages_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRandomReply(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Contains(t, cannedReplies, RandomReply())
	}
	assert.Len(t, cannedReplies, 6)
}
