package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=refresh.go -destination=mock_refresh.go -package=handlers

// RatesRefresher refetches the rate table of a screen.
type RatesRefresher interface {
	Refresh(ctx context.Context, id uuid.UUID) (*models.ScreenState, error)
}

// NewRefreshRatesHandler returns an HTTP handler retrying the rate fetch.
// @Summary Refetch rates
// @Description Fetches rates for the current base currency again
// @Tags screen
// @Produce json
// @Success 202 {object} handlers.ScreenResponse "Fetch started"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /screen/refresh [post]
// @Security BearerAuth
func NewRefreshRatesHandler(refresher RatesRefresher, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		state, err := refresher.Refresh(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusAccepted, newScreenResponse(state))
	}
}
