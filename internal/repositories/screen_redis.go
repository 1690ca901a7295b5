package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ScreenRedisRepository keeps screen sessions in Redis.
// Each session expires after ttl without writes.
type ScreenRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScreenRedisRepository creates a new repository instance
func NewScreenRedisRepository(client *redis.Client, ttl time.Duration) *ScreenRedisRepository {
	return &ScreenRedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func screenKey(id uuid.UUID) string {
	return fmt.Sprintf("screen:%s", id)
}

// Get loads a session state
func (r *ScreenRedisRepository) Get(ctx context.Context, id uuid.UUID) (*models.ScreenState, error) {
	key := screenKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrSessionNotFound
		}
		logger.Log.Errorw("failed to load session", "key", key, "error", err)
		return nil, err
	}

	var state models.ScreenState
	if err := json.Unmarshal(val, &state); err != nil {
		logger.Log.Errorw("failed to decode session", "key", key, "error", err)
		return nil, fmt.Errorf("decoding session %s: %w", id, err)
	}

	logger.Log.Debugw("session loaded", "key", key)
	return &state, nil
}

// Save writes a session state and refreshes its expiration
func (r *ScreenRedisRepository) Save(ctx context.Context, state *models.ScreenState) error {
	key := screenKey(state.SessionID)

	val, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", state.SessionID, err)
	}

	err = r.client.Set(ctx, key, val, r.ttl).Err()
	logger.Log.Debugw("session saved",
		"key", key,
		"ttl", r.ttl,
		"error", err,
	)

	return err
}

// Delete removes a session state
func (r *ScreenRedisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := screenKey(id)

	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("failed to delete session", "key", key, "error", err)
		return err
	}
	if n == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}
