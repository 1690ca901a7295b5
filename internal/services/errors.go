package services

import "errors"

// Error variables
var (
	ErrInvalidInput     = errors.New("invalid amount")
	ErrRatesUnavailable = errors.New("exchange rates not available")
	ErrUnknownCurrency  = errors.New("invalid target currency")
)

// errStaleFetch marks a fetch result superseded by a newer request.
var errStaleFetch = errors.New("stale fetch result")
