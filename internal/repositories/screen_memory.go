package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type memoryScreen struct {
	state     models.ScreenState
	expiresAt time.Time // zero means no expiration
}

// ScreenMemoryRepository keeps screen sessions in process memory.
// Each session expires after ttl without writes, like the Redis repository.
type ScreenMemoryRepository struct {
	mu        sync.RWMutex
	screens   map[uuid.UUID]memoryScreen
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewScreenMemoryRepository creates an empty in-memory repository.
// A zero ttl keeps sessions until they are deleted.
func NewScreenMemoryRepository(ttl time.Duration) *ScreenMemoryRepository {
	return &ScreenMemoryRepository{
		screens: make(map[uuid.UUID]memoryScreen),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns a copy of the stored session state.
func (r *ScreenMemoryRepository) Get(ctx context.Context, id uuid.UUID) (*models.ScreenState, error) {
	r.mu.RLock()
	screen, ok := r.screens[id]
	r.mu.RUnlock()

	if !ok {
		return nil, models.ErrSessionNotFound
	}
	if r.expired(screen, r.now()) {
		r.mu.Lock()
		// the session may have been saved again since the read lock was released
		if current, ok := r.screens[id]; ok && r.expired(current, r.now()) {
			delete(r.screens, id)
		}
		r.mu.Unlock()
		return nil, models.ErrSessionNotFound
	}

	clone := screen.state.Clone()
	return &clone, nil
}

// Save stores a copy of the session state and refreshes its expiration.
// Expired sessions are swept at most once per ttl.
func (r *ScreenMemoryRepository) Save(ctx context.Context, state *models.ScreenState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	screen := memoryScreen{state: state.Clone()}
	if r.ttl > 0 {
		screen.expiresAt = now.Add(r.ttl)
	}
	r.screens[state.SessionID] = screen

	if r.ttl > 0 && now.Sub(r.lastSweep) >= r.ttl {
		r.sweep(now)
	}
	return nil
}

// Delete removes a session.
func (r *ScreenMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	screen, ok := r.screens[id]
	if !ok {
		return models.ErrSessionNotFound
	}
	delete(r.screens, id)
	if r.expired(screen, r.now()) {
		return models.ErrSessionNotFound
	}
	return nil
}

func (r *ScreenMemoryRepository) expired(screen memoryScreen, now time.Time) bool {
	return !screen.expiresAt.IsZero() && !now.Before(screen.expiresAt)
}

// sweep drops expired sessions. The caller holds the write lock.
func (r *ScreenMemoryRepository) sweep(now time.Time) {
	removed := 0
	for id, screen := range r.screens {
		if r.expired(screen, now) {
			delete(r.screens, id)
			removed++
		}
	}
	r.lastSweep = now
	if removed > 0 {
		logger.Log.Debugw("expired sessions swept", "removed", removed, "remaining", len(r.screens))
	}
}
