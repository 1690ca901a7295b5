package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=screen.go -destination=mock_screen.go -package=handlers

// ScreenReader reads screen state.
type ScreenReader interface {
	State(ctx context.Context, id uuid.UUID) (*models.ScreenState, error)
}

// ScreenCloser discards screen sessions.
type ScreenCloser interface {
	Close(ctx context.Context, id uuid.UUID) error
}

// NewGetScreenHandler returns an HTTP handler for the current screen state.
// @Summary Get screen state
// @Tags screen
// @Produce json
// @Success 200 {object} handlers.ScreenResponse "Screen state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Router /screen [get]
// @Security BearerAuth
func NewGetScreenHandler(reader ScreenReader, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		state, err := reader.State(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newScreenResponse(state))
	}
}

// NewCloseScreenHandler returns an HTTP handler closing the screen session.
// @Summary Close screen session
// @Tags screen
// @Success 204 "Session closed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Router /screen [delete]
// @Security BearerAuth
func NewCloseScreenHandler(closer ScreenCloser, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		if err := closer.Close(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
