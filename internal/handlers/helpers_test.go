package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

var testSessionID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func withSession(id uuid.UUID) SessionGetter {
	return func(context.Context) (uuid.UUID, bool) { return id, true }
}

func noSession(context.Context) (uuid.UUID, bool) {
	return uuid.Nil, false
}

// loadedState returns a screen with USD rates fetched.
func loadedState() *models.ScreenState {
	s, _ := models.NewScreenState(testSessionID).WithBase(models.USD).WithRates(1, models.RateTable{
		models.EUR: 0.9,
		models.GBP: 0.8,
		models.JPY: 150,
	})
	return &s
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
