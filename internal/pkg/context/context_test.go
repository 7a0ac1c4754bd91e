package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestWithRequestID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")

	_, err := uuid.Parse(GetRequestID(ctx))
	assert.NoError(t, err)
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestSessionID(t *testing.T) {
	ctx := WithSessionID(context.Background(), "session-1")

	assert.Equal(t, "session-1", GetSessionID(ctx))
	assert.Equal(t, "", GetSessionID(context.Background()))
	assert.Equal(t, "", GetRequestID(ctx))
}
