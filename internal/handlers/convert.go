package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=handlers

// ScreenConverter converts the screen amount into the target currency.
type ScreenConverter interface {
	Convert(ctx context.Context, id uuid.UUID) (string, error)
}

// ConvertResponse represents a successful conversion
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Converted amount with two decimals
	// default: 90.00
	ConvertedAmount string `json:"converted_amount"`
}

// NewConvertHandler returns an HTTP handler for the convert action.
// @Summary Convert
// @Description Converts the entered amount into the target currency using the current rate table
// @Tags screen
// @Produce json
// @Success 200 {object} handlers.ConvertResponse "Converted amount"
// @Failure 400 {object} handlers.ErrorResponse "Please enter a valid number."
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Exchange rates not available."
// @Failure 422 {object} handlers.ErrorResponse "Invalid target currency."
// @Router /screen/convert [post]
// @Security BearerAuth
func NewConvertHandler(converter ScreenConverter, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		result, err := converter.Convert(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ConvertResponse{ConvertedAmount: result})
	}
}
