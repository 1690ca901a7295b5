package models

import (
	"github.com/google/uuid"
)

// ScreenState is the view state of one converter screen session.
type ScreenState struct {
	SessionID       uuid.UUID `json:"session_id"`
	Amount          string    `json:"amount"`           // Raw amount as typed by the user
	Base            Currency  `json:"base"`             // Currency the rate table is relative to
	Target          Currency  `json:"target"`           // Currency to convert into
	Rates           RateTable `json:"rates"`            // nil until a fetch for Base succeeds
	ConvertedAmount string    `json:"converted_amount"` // Last successful conversion result
	DarkMode        bool      `json:"dark_mode"`
	FetchSeq        uint64    `json:"fetch_seq"`   // Sequence number of the latest issued fetch
	AppliedSeq      uint64    `json:"applied_seq"` // Sequence number of the latest settled fetch
	LastError       string    `json:"last_error"`  // Message of the latest failed fetch
}

// NewScreenState returns the initial state of a freshly opened screen.
func NewScreenState(id uuid.UUID) ScreenState {
	return ScreenState{
		SessionID: id,
		Base:      USD,
		Target:    EUR,
	}
}

// Clone returns a deep copy of s.
func (s ScreenState) Clone() ScreenState {
	s.Rates = s.Rates.Clone()
	return s
}

// Loading reports whether the latest issued fetch has not settled yet.
func (s ScreenState) Loading() bool {
	return s.FetchSeq != s.AppliedSeq
}

// WithAmount stores the raw amount. Validation happens at conversion time.
func (s ScreenState) WithAmount(amount string) ScreenState {
	s.Amount = amount
	return s
}

// WithTarget selects the target currency.
func (s ScreenState) WithTarget(c Currency) ScreenState {
	s.Target = c
	return s
}

// WithBase selects the base currency, drops the rate table and issues a new
// fetch sequence number.
func (s ScreenState) WithBase(c Currency) ScreenState {
	s.Base = c
	s.Rates = nil
	s.FetchSeq++
	return s
}

// WithRefetch issues a new fetch sequence number for the current base.
// The current table stays until the new one arrives.
func (s ScreenState) WithRefetch() ScreenState {
	s.FetchSeq++
	return s
}

// WithRates replaces the rate table with the result of fetch seq.
// Results of any fetch other than the latest issued one are rejected.
func (s ScreenState) WithRates(seq uint64, rates RateTable) (ScreenState, bool) {
	if seq != s.FetchSeq {
		return s, false
	}
	s.Rates = rates.Clone()
	s.AppliedSeq = seq
	s.LastError = ""
	return s, true
}

// WithFetchError records the failure of fetch seq. The rate table is left as is.
func (s ScreenState) WithFetchError(seq uint64, err error) (ScreenState, bool) {
	if seq != s.FetchSeq {
		return s, false
	}
	s.AppliedSeq = seq
	s.LastError = err.Error()
	return s, true
}

// WithConverted stores a conversion result.
func (s ScreenState) WithConverted(result string) ScreenState {
	s.ConvertedAmount = result
	return s
}

// WithThemeToggled flips the dark mode flag.
func (s ScreenState) WithThemeToggled() ScreenState {
	s.DarkMode = !s.DarkMode
	return s
}
