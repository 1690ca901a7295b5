package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=theme.go -destination=mock_theme.go -package=handlers

// ThemeToggler flips the screen theme.
type ThemeToggler interface {
	ToggleTheme(ctx context.Context, id uuid.UUID) (*models.ScreenState, error)
}

// NewToggleThemeHandler returns an HTTP handler for the dark mode switch.
// @Summary Toggle dark mode
// @Tags screen
// @Produce json
// @Success 200 {object} handlers.ScreenResponse "Screen state"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /screen/theme [post]
// @Security BearerAuth
func NewToggleThemeHandler(toggler ThemeToggler, sessionGetter SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionGetter(r.Context())
		if !ok {
			writeUnauthorized(w)
			return
		}

		state, err := toggler.ToggleTheme(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newScreenResponse(state))
	}
}
