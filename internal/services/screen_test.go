package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
)

var usdRates = models.RateTable{
	models.USD: 1,
	models.EUR: 0.9,
	models.GBP: 0.8,
	models.JPY: 150,
}

// newMemoryService returns a service over an in-memory store and a mock fetcher.
func newMemoryService(t *testing.T) (*ScreenService, *MockRatesFetcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	fetcher := NewMockRatesFetcher(ctrl)
	svc := NewScreenService(repositories.NewScreenMemoryRepository(time.Hour), fetcher, time.Second)
	return svc, fetcher
}

func lockCount(svc *ScreenService) int {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return len(svc.locks)
}

func TestScreenService_OpenFetchesDefaultBase(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.USD, opened.Base)
	assert.Equal(t, models.EUR, opened.Target)
	assert.True(t, opened.Loading())

	svc.Wait()

	state, err := svc.State(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, usdRates, state.Rates)
	assert.False(t, state.Loading())
	assert.Empty(t, state.LastError)
}

func TestScreenService_ConvertScenario(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	svc.Wait()

	_, err = svc.SetAmount(ctx, opened.SessionID, "100")
	require.NoError(t, err)

	result, err := svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "90.00", result)

	// converting twice without changes yields the same result
	again, err := svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, result, again)

	_, err = svc.SetTarget(ctx, opened.SessionID, models.JPY)
	require.NoError(t, err)
	result, err = svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "15000.00", result)

	state, err := svc.State(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "15000.00", state.ConvertedAmount)
}

func TestScreenService_ConvertErrorsKeepState(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(models.RateTable{models.EUR: 0.9}, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	svc.Wait()

	_, err = svc.SetAmount(ctx, opened.SessionID, "10")
	require.NoError(t, err)
	_, err = svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)

	_, err = svc.SetAmount(ctx, opened.SessionID, "abc")
	require.NoError(t, err)
	_, err = svc.Convert(ctx, opened.SessionID)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetAmount(ctx, opened.SessionID, "1e400")
	require.NoError(t, err)
	_, err = svc.Convert(ctx, opened.SessionID)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetAmount(ctx, opened.SessionID, "10")
	require.NoError(t, err)
	_, err = svc.SetTarget(ctx, opened.SessionID, models.GBP)
	require.NoError(t, err)
	_, err = svc.Convert(ctx, opened.SessionID)
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	state, err := svc.State(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "9.00", state.ConvertedAmount)
}

func TestScreenService_RatesUnavailableUntilFetched(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	release := make(chan struct{})
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).
		DoAndReturn(func(context.Context, models.Currency) (models.RateTable, error) {
			<-release
			return usdRates, nil
		})
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)

	_, err = svc.SetAmount(ctx, opened.SessionID, "50")
	require.NoError(t, err)
	_, err = svc.Convert(ctx, opened.SessionID)
	assert.ErrorIs(t, err, ErrRatesUnavailable)

	close(release)
	svc.Wait()

	result, err := svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "45.00", result)
}

func TestScreenService_ProviderErrorKeepsConvertedAmount(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	gomock.InOrder(
		fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil),
		fetcher.EXPECT().FetchRates(gomock.Any(), models.EUR).
			Return(nil, fmt.Errorf("%w: quota-reached", models.ErrProvider)),
	)
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	svc.Wait()

	_, err = svc.SetAmount(ctx, opened.SessionID, "100")
	require.NoError(t, err)
	_, err = svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)

	_, err = svc.SetBase(ctx, opened.SessionID, models.EUR)
	require.NoError(t, err)
	svc.Wait()

	state, err := svc.State(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "90.00", state.ConvertedAmount)
	assert.Contains(t, state.LastError, "failed to fetch exchange rates")
	assert.Nil(t, state.Rates)
	assert.False(t, state.Loading())

	_, err = svc.Convert(ctx, opened.SessionID)
	assert.ErrorIs(t, err, ErrRatesUnavailable)
}

func TestScreenService_StaleFetchDiscarded(t *testing.T) {
	svc, fetcher := newMemoryService(t)

	eurGate := make(chan struct{})
	gbpGate := make(chan struct{})
	eurRates := models.RateTable{models.USD: 1.1, models.EUR: 1}
	gbpRates := models.RateTable{models.USD: 1.25, models.GBP: 1}

	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.EUR).
		DoAndReturn(func(context.Context, models.Currency) (models.RateTable, error) {
			<-eurGate
			return eurRates, nil
		})
	fetcher.EXPECT().FetchRates(gomock.Any(), models.GBP).
		DoAndReturn(func(context.Context, models.Currency) (models.RateTable, error) {
			<-gbpGate
			return gbpRates, nil
		})
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	svc.Wait()
	id := opened.SessionID

	_, err = svc.SetBase(ctx, id, models.EUR)
	require.NoError(t, err)
	_, err = svc.SetBase(ctx, id, models.GBP)
	require.NoError(t, err)

	// the newer request answers first
	close(gbpGate)
	require.Eventually(t, func() bool {
		state, err := svc.State(ctx, id)
		return err == nil && !state.Loading()
	}, time.Second, 5*time.Millisecond)

	// the older one arrives last and must not win
	close(eurGate)
	svc.Wait()

	state, err := svc.State(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.GBP, state.Base)
	assert.Equal(t, gbpRates, state.Rates)
	assert.Equal(t, uint64(3), state.FetchSeq)
	assert.Equal(t, uint64(3), state.AppliedSeq)
}

func TestScreenService_ThemeDoesNotAffectConversion(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	svc.Wait()

	_, err = svc.SetAmount(ctx, opened.SessionID, "7")
	require.NoError(t, err)
	light, err := svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)

	state, err := svc.ToggleTheme(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.True(t, state.DarkMode)

	dark, err := svc.Convert(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, light, dark)
}

func TestScreenService_CloseDropsLateFetch(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	release := make(chan struct{})
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).
		DoAndReturn(func(context.Context, models.Currency) (models.RateTable, error) {
			<-release
			return usdRates, nil
		})
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, opened.SessionID))
	close(release)
	svc.Wait()

	_, err = svc.State(ctx, opened.SessionID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Close(ctx, opened.SessionID), models.ErrSessionNotFound)
	assert.Zero(t, lockCount(svc))
}

func TestScreenService_FetchTimeout(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	svc.fetchTimeout = 10 * time.Millisecond
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).
		DoAndReturn(func(ctx context.Context, _ models.Currency) (models.RateTable, error) {
			<-ctx.Done()
			return nil, fmt.Errorf("%w: %v", models.ErrNetwork, ctx.Err())
		})
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	svc.Wait()

	state, err := svc.State(ctx, opened.SessionID)
	require.NoError(t, err)
	assert.Contains(t, state.LastError, "network error occurred")
	assert.Nil(t, state.Rates)
}

func TestScreenService_AbandonedSessionsReleaseLocks(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil).Times(1000)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		_, err := svc.Open(ctx)
		require.NoError(t, err)
	}
	svc.Wait()

	assert.Zero(t, lockCount(svc))
}

func TestScreenService_ConcurrentUpdatesReleaseLock(t *testing.T) {
	svc, fetcher := newMemoryService(t)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil)
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ToggleTheme(ctx, opened.SessionID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	svc.Wait()

	state, err := svc.State(ctx, opened.SessionID)
	require.NoError(t, err)
	// an even number of toggles leaves the theme as it was
	assert.False(t, state.DarkMode)
	assert.Equal(t, usdRates, state.Rates)
	assert.Zero(t, lockCount(svc))
}

func TestScreenService_ExpiredSessionIsGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockRatesFetcher(ctrl)
	fetcher.EXPECT().FetchRates(gomock.Any(), models.USD).Return(usdRates, nil)

	svc := NewScreenService(repositories.NewScreenMemoryRepository(50*time.Millisecond), fetcher, time.Second)
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	require.NoError(t, err)
	svc.Wait()

	time.Sleep(100 * time.Millisecond)

	_, err = svc.State(ctx, opened.SessionID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	_, err = svc.SetAmount(ctx, opened.SessionID, "1")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.Zero(t, lockCount(svc))
}

func TestScreenService_UpdateStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	state := models.NewScreenState(id)

	tests := []struct {
		name        string
		mockSetup   func(store *MockSessionStore)
		expectedErr error
	}{
		{
			name: "session_not_found",
			mockSetup: func(store *MockSessionStore) {
				store.EXPECT().Get(ctx, id).Return(nil, models.ErrSessionNotFound)
			},
			expectedErr: models.ErrSessionNotFound,
		},
		{
			name: "save_failure",
			mockSetup: func(store *MockSessionStore) {
				store.EXPECT().Get(ctx, id).Return(&state, nil)
				store.EXPECT().
					Save(ctx, &models.ScreenState{SessionID: id, Amount: "5", Base: models.USD, Target: models.EUR}).
					Return(errors.New("redis down"))
			},
			expectedErr: errors.New("redis down"),
		},
		{
			name: "success",
			mockSetup: func(store *MockSessionStore) {
				store.EXPECT().Get(ctx, id).Return(&state, nil)
				store.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMockSessionStore(ctrl)
			fetcher := NewMockRatesFetcher(ctrl)
			tt.mockSetup(store)

			svc := NewScreenService(store, fetcher, time.Second)
			got, err := svc.SetAmount(ctx, id, "5")

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "5", got.Amount)
			}
			assert.Zero(t, lockCount(svc))
		})
	}
}

func TestScreenService_OpenSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockSessionStore(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := NewScreenService(store, fetcher, time.Second)
	got, err := svc.Open(context.Background())

	assert.EqualError(t, err, "redis down")
	assert.Nil(t, got)
	svc.Wait()
}

func TestScreenService_SetBaseFetchesNewBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	state, _ := models.NewScreenState(id).WithBase(models.USD).WithRates(1, usdRates)

	store := NewMockSessionStore(ctrl)
	fetcher := NewMockRatesFetcher(ctrl)

	gomock.InOrder(
		store.EXPECT().Get(ctx, id).Return(&state, nil),
		store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *models.ScreenState) error {
			assert.Nil(t, s.Rates)
			assert.Equal(t, models.EUR, s.Base)
			return nil
		}),
	)
	fetcher.EXPECT().
		FetchRates(gomock.Any(), models.EUR).
		Return(models.RateTable{models.USD: 1.1}, nil)

	// settle reloads the state written by SetBase
	settled := state.WithBase(models.EUR)
	store.EXPECT().Get(gomock.Any(), id).Return(&settled, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.ScreenState) error {
		assert.Equal(t, models.RateTable{models.USD: 1.1}, s.Rates)
		return nil
	})

	svc := NewScreenService(store, fetcher, time.Second)
	got, err := svc.SetBase(ctx, id, models.EUR)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.FetchSeq)

	svc.Wait()
}
