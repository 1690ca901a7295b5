package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=target.go -destination=mock_target.go -package=handlers

// TargetSetter changes the target currency of a screen.
type TargetSetter interface {
	SetTarget(ctx context.Context, id uuid.UUID, target models.Currency) (*models.ScreenState, error)
}

// NewSetTargetHandler returns an HTTP handler for the target currency selector.
// @Summary Select target currency
// @Tags screen
// @Accept json
// @Produce json
// @Param request body handlers.CurrencyRequest true "Target currency"
// @Success 200 {object} handlers.ScreenResponse "Screen state"
// @Failure 400 {object} handlers.ErrorResponse "Invalid currency"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /screen/target [put]
// @Security BearerAuth
func NewSetTargetHandler(setter TargetSetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		target, err := decodeCurrency(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid currency")
			return
		}

		state, err := setter.SetTarget(r.Context(), id, target)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newScreenResponse(state))
	}
}
