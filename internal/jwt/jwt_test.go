package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetSessionID(t *testing.T) {
	j := New("test-secret", time.Minute)

	sessionID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetSessionID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	require.NoError(t, err)

	got, err := j.GetSessionID(ctx, token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)

	got, err := j.GetSessionID(context.Background(), "invalid.token.string")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := j1.Generate(ctx, uuid.New())
	require.NoError(t, err)

	_, err = j2.GetSessionID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_ClaimProblems(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	sign := func(claims gojwt.MapClaims) string {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return token
	}
	exp := time.Now().Add(time.Minute).Unix()

	_, err := j.GetSessionID(ctx, sign(gojwt.MapClaims{"exp": exp}))
	assert.EqualError(t, err, "session_id not found in token")

	_, err = j.GetSessionID(ctx, sign(gojwt.MapClaims{"exp": exp, "session_id": "not-a-uuid"}))
	assert.EqualError(t, err, "invalid session_id format")
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
