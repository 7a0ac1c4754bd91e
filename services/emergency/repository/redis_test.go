package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/quickconnect/internal/pkg/constants"
	"github.com/piresc/quickconnect/internal/pkg/database"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/emergency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func testSession() *models.EmergencySession {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &models.EmergencySession{
		ID:   "session-1",
		Step: models.StepSelectHospital,
		Type: models.EmergencyTypeAccident,
		Location: &models.UserLocation{
			Latitude:  37.7749,
			Longitude: -122.4194,
			Address:   "1 Market St, San Francisco",
		},
		Hospitals: []models.Hospital{
			{ID: "1", Name: "City General Hospital", Distance: 0.9},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRedisRepository_SaveAndGet(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewRedisRepository(&database.RedisClient{Client: client}, 30*time.Minute)
	ctx := context.Background()
	session := testSession()

	require.NoError(t, repo.Save(ctx, session))

	key := fmt.Sprintf(constants.KeyEmergencySession, session.ID)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 30*time.Minute, mr.TTL(key))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestRedisRepository_Expires(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewRedisRepository(&database.RedisClient{Client: client}, time.Minute)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testSession()))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "session-1")
	assert.ErrorIs(t, err, emergency.ErrSessionNotFound)
}

func TestRedisRepository_GetMissing(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewRedisRepository(&database.RedisClient{Client: client}, time.Minute)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, emergency.ErrSessionNotFound)
}

func TestRedisRepository_CorruptValue(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyEmergencySession, "bad"), "{not json"))
	repo := NewRedisRepository(&database.RedisClient{Client: client}, time.Minute)

	_, err := repo.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, emergency.ErrSessionNotFound)
}

func TestRedisRepository_Delete(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewRedisRepository(&database.RedisClient{Client: client}, time.Minute)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testSession()))

	require.NoError(t, repo.Delete(ctx, "session-1"))
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyEmergencySession, "session-1")))
}

func TestRedisRepository_ConnectionError(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewRedisRepository(&database.RedisClient{Client: client}, time.Minute)
	mr.Close()

	err := repo.Save(context.Background(), testSession())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store session")
}
