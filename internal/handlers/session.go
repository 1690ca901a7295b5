package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=handlers

// ScreenOpener opens new screen sessions.
type ScreenOpener interface {
	Open(ctx context.Context) (*models.ScreenState, error)
}

// SessionTokenGenerator issues tokens for screen sessions.
type SessionTokenGenerator interface {
	Generate(ctx context.Context, sessionID uuid.UUID) (string, error)
}

// SessionResponse represents a newly opened screen session
// swagger:model SessionResponse
type SessionResponse struct {
	// Bearer token for the session
	Token string `json:"token"`

	// Initial screen state
	Screen ScreenResponse `json:"screen"`
}

// NewOpenSessionHandler returns an HTTP handler opening a converter screen.
// @Summary Open a screen session
// @Description Creates a screen with default state and starts fetching rates for the default base currency
// @Tags session
// @Produce json
// @Success 201 {object} handlers.SessionResponse "Session opened"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /sessions [post]
func NewOpenSessionHandler(opener ScreenOpener, tokens SessionTokenGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		state, err := opener.Open(ctx)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		token, err := tokens.Generate(ctx, state.SessionID)
		if err != nil {
			logger.Log.Errorw("failed to generate session token",
				"request_id", middlewares.RequestIDFromContext(ctx),
				"session_id", state.SessionID,
				"err", err,
			)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, SessionResponse{
			Token:  token,
			Screen: newScreenResponse(state),
		})
	}
}
