package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/quickconnect/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream down")

func failing(ctx context.Context) error { return errUpstream }
func passing(ctx context.Context) error { return nil }

func newTestBreaker(threshold uint32, timeout time.Duration) (*CircuitBreaker, *time.Time) {
	cfg := DefaultConfig("geocoder")
	cfg.FailureThreshold = threshold
	cfg.Timeout = timeout
	cb := New(cfg, logger.NewNopLogger())
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return clock }
	cb.expiry = clock.Add(cfg.Interval)
	return cb, &clock
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(2, time.Minute)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, failing), errUpstream)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb, clock := newTestBreaker(1, time.Minute)
	ctx := context.Background()

	var transitions []State
	cb.config.OnStateChange = func(name string, from, to State) {
		assert.Equal(t, "geocoder", name)
		transitions = append(transitions, to)
	}

	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateOpen, cb.State())

	*clock = clock.Add(2 * time.Minute)
	assert.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock := newTestBreaker(1, time.Minute)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	*clock = clock.Add(2 * time.Minute)

	assert.ErrorIs(t, cb.Execute(ctx, failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	cb, _ := newTestBreaker(1, time.Minute)
	cb.config.IsFailure = func(err error) bool { return !errors.Is(err, errUpstream) && err != nil }

	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, StateClosed, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
