package models

// RateTable maps a currency to its multiplier relative to one base currency.
// A nil table means no rates are available.
type RateTable map[Currency]float64

// NewRateTable builds a table from raw provider rates.
// Codes outside the supported set and non-positive rates are dropped.
func NewRateTable(raw map[string]float64) RateTable {
	table := make(RateTable, len(currencies))
	for code, rate := range raw {
		c := Currency(code)
		if !c.Valid() || rate <= 0 {
			continue
		}
		table[c] = rate
	}
	return table
}

// Clone returns a copy of the table, preserving nil.
func (t RateTable) Clone() RateTable {
	if t == nil {
		return nil
	}
	out := make(RateTable, len(t))
	for c, r := range t {
		out[c] = r
	}
	return out
}
