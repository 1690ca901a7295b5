package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ExchangeRatesAPIURL is the default base URL of the open exchange rate API.
const ExchangeRatesAPIURL = "https://open.er-api.com"

const resultSuccess = "success"

// ExchangeRatesHTTPFacade fetches rate tables from the open exchange rate REST API.
type ExchangeRatesHTTPFacade struct {
	url    string
	apiKey string
	client *http.Client
}

// NewExchangeRatesHTTPFacade creates a new facade for the API at url.
//
// apiKey is kept for providers that need one but is not sent: the open
// endpoint takes no credentials and the keyed endpoint uses a different path.
func NewExchangeRatesHTTPFacade(url, apiKey string, timeout time.Duration) *ExchangeRatesHTTPFacade {
	if url == "" {
		url = ExchangeRatesAPIURL
	}
	return &ExchangeRatesHTTPFacade{
		url:    strings.TrimRight(url, "/"),
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// latestResponse is the body of GET /v6/latest/{base}.
type latestResponse struct {
	Result    string             `json:"result"`
	ErrorType string             `json:"error-type"`
	BaseCode  string             `json:"base_code"`
	Rates     map[string]float64 `json:"rates"`
}

// FetchRates loads the latest rates relative to base.
// Provider-reported failures wrap models.ErrProvider; transport failures and
// unreadable bodies wrap models.ErrNetwork.
func (f *ExchangeRatesHTTPFacade) FetchRates(ctx context.Context, base models.Currency) (models.RateTable, error) {
	url := fmt.Sprintf("%s/v6/latest/%s", f.url, base)

	logger.Log.Debugw("loading exchange rates", "base", base, "url", url, "api_key_set", f.apiKey != "")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building http request: %v", models.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("exchange rates request failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: http get: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode exchange rates", "url", url, "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%w: decoding json: %v", models.ErrNetwork, err)
	}

	if body.Result != resultSuccess {
		logger.Log.Errorw("exchange rates provider reported failure",
			"url", url,
			"status", resp.StatusCode,
			"result", body.Result,
			"error_type", body.ErrorType,
		)
		if body.ErrorType != "" {
			return nil, fmt.Errorf("%w: %s", models.ErrProvider, body.ErrorType)
		}
		return nil, models.ErrProvider
	}

	return models.NewRateTable(body.Rates), nil
}
