package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=base.go -destination=mock_base.go -package=handlers

// BaseSetter changes the base currency of a screen.
type BaseSetter interface {
	SetBase(ctx context.Context, id uuid.UUID, base models.Currency) (*models.ScreenState, error)
}

// CurrencyRequest represents the JSON body for selecting a currency
// swagger:model CurrencyRequest
type CurrencyRequest struct {
	// Currency code
	// required: true
	// default: EUR
	Currency string `json:"currency"`
}

// decodeCurrency reads a CurrencyRequest and parses its code.
func decodeCurrency(r *http.Request) (models.Currency, error) {
	var req CurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", err
	}
	return models.ParseCurrency(req.Currency)
}

// NewSetBaseHandler returns an HTTP handler for the base currency selector.
// @Summary Select base currency
// @Description Drops the current rate table and starts fetching rates for the new base currency
// @Tags screen
// @Accept json
// @Produce json
// @Param request body handlers.CurrencyRequest true "Base currency"
// @Success 202 {object} handlers.ScreenResponse "Fetch started"
// @Failure 400 {object} handlers.ErrorResponse "Invalid currency"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /screen/base [put]
// @Security BearerAuth
func NewSetBaseHandler(setter BaseSetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		base, err := decodeCurrency(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid currency")
			return
		}

		state, err := setter.SetBase(r.Context(), id, base)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusAccepted, newScreenResponse(state))
	}
}
