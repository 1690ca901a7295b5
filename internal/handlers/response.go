package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// SessionGetter returns the screen session bound to the request.
type SessionGetter func(ctx context.Context) (uuid.UUID, bool)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Please enter a valid number.
	Error string `json:"error"`
}

// ScreenResponse represents the state of a converter screen
// swagger:model ScreenResponse
type ScreenResponse struct {
	// Amount as typed by the user
	// default: 100
	Amount string `json:"amount"`

	// Currency the rates are relative to
	// default: USD
	BaseCurrency string `json:"base_currency"`

	// Currency to convert into
	// default: EUR
	TargetCurrency string `json:"target_currency"`

	// Rates relative to the base currency, null until fetched
	Rates map[string]float64 `json:"rates"`

	// Whether a rate table for the base currency is present
	RatesAvailable bool `json:"rates_available"`

	// Whether a rate fetch is in flight
	Loading bool `json:"loading"`

	// Last conversion result
	// default: 90.00
	ConvertedAmount string `json:"converted_amount"`

	// Dark theme flag
	DarkMode bool `json:"dark_mode"`

	// Message of the last failed rate fetch
	FetchError string `json:"fetch_error,omitempty"`
}

func newScreenResponse(s *models.ScreenState) ScreenResponse {
	resp := ScreenResponse{
		Amount:          s.Amount,
		BaseCurrency:    s.Base.String(),
		TargetCurrency:  s.Target.String(),
		RatesAvailable:  s.Rates != nil,
		Loading:         s.Loading(),
		ConvertedAmount: s.ConvertedAmount,
		DarkMode:        s.DarkMode,
		FetchError:      s.LastError,
	}
	if s.Rates != nil {
		resp.Rates = make(map[string]float64, len(s.Rates))
		for c, r := range s.Rates {
			resp.Rates[c.String()] = r
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Unauthorized")
}

// writeServiceError maps service and domain errors to status codes and the
// short messages shown to the user.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Please enter a valid number.")
	case errors.Is(err, models.ErrUnsupportedCurrency):
		writeError(w, http.StatusBadRequest, "Invalid currency")
	case errors.Is(err, services.ErrRatesUnavailable):
		writeError(w, http.StatusConflict, "Exchange rates not available.")
	case errors.Is(err, services.ErrUnknownCurrency):
		writeError(w, http.StatusUnprocessableEntity, "Invalid target currency.")
	case errors.Is(err, models.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "Session not found")
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"err", err,
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
