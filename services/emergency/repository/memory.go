package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/piresc/quickconnect/internal/pkg/constants"
	"github.com/piresc/quickconnect/internal/pkg/models"
	"github.com/piresc/quickconnect/services/emergency"
)

type memoryRepo struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryRepository keeps sessions in process. Values are stored encoded
// so callers never share a session with the store.
func NewMemoryRepository(ttl time.Duration) emergency.EmergencyRepo {
	cleanup := ttl
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &memoryRepo{
		cache: gocache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

func (r *memoryRepo) Save(ctx context.Context, session *models.EmergencySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	expiration := r.ttl
	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	r.cache.Set(fmt.Sprintf(constants.KeyEmergencySession, session.ID), data, expiration)
	return nil
}

func (r *memoryRepo) Get(ctx context.Context, id string) (*models.EmergencySession, error) {
	v, ok := r.cache.Get(fmt.Sprintf(constants.KeyEmergencySession, id))
	if !ok {
		return nil, emergency.ErrSessionNotFound
	}

	var session models.EmergencySession
	if err := json.Unmarshal(v.([]byte), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	r.cache.Delete(fmt.Sprintf(constants.KeyEmergencySession, id))
	return nil
}
