package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=amount.go -destination=mock_amount.go -package=handlers

// AmountSetter stores the amount typed by the user.
type AmountSetter interface {
	SetAmount(ctx context.Context, id uuid.UUID, amount string) (*models.ScreenState, error)
}

// AmountRequest represents the JSON body for entering an amount
// swagger:model AmountRequest
type AmountRequest struct {
	// Amount as typed, validated on conversion
	// required: true
	// default: 100
	Amount string `json:"amount"`
}

// NewSetAmountHandler returns an HTTP handler for the amount field.
// @Summary Enter amount
// @Description Stores the raw amount. It is validated when converting.
// @Tags screen
// @Accept json
// @Produce json
// @Param request body handlers.AmountRequest true "Amount"
// @Success 200 {object} handlers.ScreenResponse "Screen state"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /screen/amount [put]
// @Security BearerAuth
func NewSetAmountHandler(setter AmountSetter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		var req AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		state, err := setter.SetAmount(r.Context(), id, req.Amount)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newScreenResponse(state))
	}
}
