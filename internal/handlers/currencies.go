package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// CurrenciesResponse lists the supported currency codes
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Supported currency codes
	Currencies []string `json:"currencies"`
}

// NewListCurrenciesHandler returns an HTTP handler listing supported currencies.
// @Summary List currencies
// @Description Returns the currency codes selectable as base or target
// @Tags currencies
// @Produce json
// @Success 200 {object} handlers.CurrenciesResponse "Supported currencies"
// @Router /currencies [get]
func NewListCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := models.Currencies()
		codes := make([]string, 0, len(list))
		for _, c := range list {
			codes = append(codes, c.String())
		}
		writeJSON(w, http.StatusOK, CurrenciesResponse{Currencies: codes})
	}
}
