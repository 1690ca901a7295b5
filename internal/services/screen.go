package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=screen.go -destination=mock_screen.go -package=services

// SessionStore keeps screen state between requests.
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.ScreenState, error)
	Save(ctx context.Context, state *models.ScreenState) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RatesFetcher loads the rate table for a base currency from an external provider.
type RatesFetcher interface {
	FetchRates(ctx context.Context, base models.Currency) (models.RateTable, error)
}

// ScreenService drives converter screen sessions.
//
// Every user action is a read-modify-write of the session state, serialized per
// session. Base currency changes start a background fetch tagged with the
// session's fetch sequence number; only the result of the latest issued fetch
// is applied.
type ScreenService struct {
	store        SessionStore
	fetcher      RatesFetcher
	fetchTimeout time.Duration

	mu       sync.Mutex
	locks    map[uuid.UUID]*sessionLock
	inflight sync.WaitGroup
}

// sessionLock serializes updates of one session. It is dropped from the
// service once no caller holds or waits for it.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewScreenService creates a new service instance.
// A zero fetchTimeout leaves fetches bounded only by the fetcher itself.
func NewScreenService(store SessionStore, fetcher RatesFetcher, fetchTimeout time.Duration) *ScreenService {
	return &ScreenService{
		store:        store,
		fetcher:      fetcher,
		fetchTimeout: fetchTimeout,
		locks:        make(map[uuid.UUID]*sessionLock),
	}
}

// Open creates a session with default state and fetches rates for the default base.
func (svc *ScreenService) Open(ctx context.Context) (*models.ScreenState, error) {
	state := models.NewScreenState(uuid.New())
	state = state.WithBase(state.Base)

	if err := svc.store.Save(ctx, &state); err != nil {
		logger.Log.Errorw("failed to save new session", "session_id", state.SessionID, "error", err)
		return nil, err
	}
	logger.Log.Infow("session opened", "session_id", state.SessionID)

	svc.fetch(state.SessionID, state.FetchSeq, state.Base)
	return &state, nil
}

// State returns the current state of a session.
func (svc *ScreenService) State(ctx context.Context, id uuid.UUID) (*models.ScreenState, error) {
	return svc.store.Get(ctx, id)
}

// SetAmount stores the raw amount typed by the user.
func (svc *ScreenService) SetAmount(ctx context.Context, id uuid.UUID, amount string) (*models.ScreenState, error) {
	return svc.update(ctx, id, func(s models.ScreenState) (models.ScreenState, error) {
		return s.WithAmount(amount), nil
	})
}

// SetTarget selects the target currency.
func (svc *ScreenService) SetTarget(ctx context.Context, id uuid.UUID, target models.Currency) (*models.ScreenState, error) {
	return svc.update(ctx, id, func(s models.ScreenState) (models.ScreenState, error) {
		return s.WithTarget(target), nil
	})
}

// SetBase selects the base currency, drops the current rate table and starts
// a fetch for the new base. Selecting the current base again refetches.
func (svc *ScreenService) SetBase(ctx context.Context, id uuid.UUID, base models.Currency) (*models.ScreenState, error) {
	state, err := svc.update(ctx, id, func(s models.ScreenState) (models.ScreenState, error) {
		return s.WithBase(base), nil
	})
	if err != nil {
		return nil, err
	}

	svc.fetch(id, state.FetchSeq, state.Base)
	return state, nil
}

// Refresh refetches rates for the current base. The current table is kept
// until the new one arrives.
func (svc *ScreenService) Refresh(ctx context.Context, id uuid.UUID) (*models.ScreenState, error) {
	state, err := svc.update(ctx, id, func(s models.ScreenState) (models.ScreenState, error) {
		return s.WithRefetch(), nil
	})
	if err != nil {
		return nil, err
	}

	svc.fetch(id, state.FetchSeq, state.Base)
	return state, nil
}

// Convert converts the session amount into the target currency and stores the
// result. On failure the session state is left untouched.
func (svc *ScreenService) Convert(ctx context.Context, id uuid.UUID) (string, error) {
	state, err := svc.update(ctx, id, func(s models.ScreenState) (models.ScreenState, error) {
		result, err := Convert(s.Amount, s.Rates, s.Target)
		if err != nil {
			return s, err
		}
		return s.WithConverted(result), nil
	})
	if err != nil {
		logger.Log.Infow("conversion failed", "session_id", id, "error", err)
		return "", err
	}

	return state.ConvertedAmount, nil
}

// ToggleTheme flips the dark mode flag of a session.
func (svc *ScreenService) ToggleTheme(ctx context.Context, id uuid.UUID) (*models.ScreenState, error) {
	return svc.update(ctx, id, func(s models.ScreenState) (models.ScreenState, error) {
		return s.WithThemeToggled(), nil
	})
}

// Close discards a session. Fetches still in flight for it are dropped on arrival.
func (svc *ScreenService) Close(ctx context.Context, id uuid.UUID) error {
	unlock := svc.lock(id)
	err := svc.store.Delete(ctx, id)
	unlock()

	if err != nil {
		return err
	}
	logger.Log.Infow("session closed", "session_id", id)
	return nil
}

// Wait blocks until all fetches started so far have settled.
func (svc *ScreenService) Wait() {
	svc.inflight.Wait()
}

func (svc *ScreenService) lock(id uuid.UUID) func() {
	svc.mu.Lock()
	l, ok := svc.locks[id]
	if !ok {
		l = &sessionLock{}
		svc.locks[id] = l
	}
	l.refs++
	svc.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		svc.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(svc.locks, id)
		}
		svc.mu.Unlock()
	}
}

// update loads the session, applies fn and saves the result if fn succeeds.
func (svc *ScreenService) update(
	ctx context.Context,
	id uuid.UUID,
	fn func(models.ScreenState) (models.ScreenState, error),
) (*models.ScreenState, error) {
	unlock := svc.lock(id)
	defer unlock()

	state, err := svc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := fn(*state)
	if err != nil {
		return nil, err
	}

	if err := svc.store.Save(ctx, &next); err != nil {
		logger.Log.Errorw("failed to save session", "session_id", id, "error", err)
		return nil, err
	}

	return &next, nil
}

// fetch loads rates for base in the background and settles them as fetch seq.
// The fetch outlives the request that triggered it.
func (svc *ScreenService) fetch(id uuid.UUID, seq uint64, base models.Currency) {
	svc.inflight.Add(1)

	go func() {
		defer svc.inflight.Done()

		ctx := context.Background()
		if svc.fetchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, svc.fetchTimeout)
			defer cancel()
		}

		rates, err := svc.fetcher.FetchRates(ctx, base)
		svc.settle(id, seq, base, rates, err)
	}()
}

func (svc *ScreenService) settle(id uuid.UUID, seq uint64, base models.Currency, rates models.RateTable, fetchErr error) {
	_, err := svc.update(context.Background(), id, func(s models.ScreenState) (models.ScreenState, error) {
		var applied bool
		if fetchErr != nil {
			s, applied = s.WithFetchError(seq, fetchErr)
		} else {
			s, applied = s.WithRates(seq, rates)
		}
		if !applied {
			return s, errStaleFetch
		}
		return s, nil
	})

	switch {
	case errors.Is(err, errStaleFetch):
		logger.Log.Debugw("stale exchange rates discarded", "session_id", id, "base", base, "seq", seq)
	case errors.Is(err, models.ErrSessionNotFound):
		logger.Log.Debugw("exchange rates for closed session discarded", "session_id", id, "seq", seq)
	case err != nil:
		logger.Log.Errorw("failed to settle exchange rates", "session_id", id, "seq", seq, "error", err)
	case fetchErr != nil:
		logger.Log.Warnw("exchange rates fetch failed", "session_id", id, "base", base, "seq", seq, "error", fetchErr)
	default:
		logger.Log.Infow("exchange rates applied", "session_id", id, "base", base, "seq", seq, "currencies", len(rates))
	}
}
