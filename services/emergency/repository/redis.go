package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/quickconnect/internal/pkg/constants"
	"github.com/piresc/quickconnect/internal/pkg/database"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/emergency"
)

type redisRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisRepository stores sessions as JSON values that expire ttl after
// their last save
func NewRedisRepository(redisClient *database.RedisClient, ttl time.Duration) emergency.EmergencyRepo {
	return &redisRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (r *redisRepo) Save(ctx context.Context, session *models.EmergencySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.KeyEmergencySession, session.ID)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*models.EmergencySession, error) {
	key := fmt.Sprintf(constants.KeyEmergencySession, id)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, emergency.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.EmergencySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	key := fmt.Sprintf(constants.KeyEmergencySession, id)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
