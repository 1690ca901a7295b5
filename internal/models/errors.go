package models

import "errors"

// Errors shared between the rate fetchers, the session stores and the services.
var (
	ErrProvider        = errors.New("failed to fetch exchange rates")
	ErrNetwork         = errors.New("network error occurred")
	ErrSessionNotFound = errors.New("session not found")
)
