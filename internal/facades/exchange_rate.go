package facades

import (
	"context"
	"fmt"

	pb "github.com/sbilibin2017/proto-exchange/exchange"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ExchangeRatesGRPCFacade fetches rate tables from a gw-exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// FetchRates loads the exchanger's rate table and re-expresses it relative to base.
func (f *ExchangeRatesGRPCFacade) FetchRates(ctx context.Context, base models.Currency) (models.RateTable, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "base", base, "error", err)
		return nil, fmt.Errorf("%w: grpc: %v", models.ErrNetwork, err)
	}

	baseRate, ok := resp.Rates[string(base)]
	if !ok || baseRate <= 0 {
		logger.Log.Errorw("exchanger has no rate for base currency", "base", base)
		return nil, fmt.Errorf("%w: no rate for %s", models.ErrProvider, base)
	}

	raw := make(map[string]float64, len(resp.Rates))
	for currency, rate := range resp.Rates {
		raw[currency] = float64(rate) / float64(baseRate)
	}

	return models.NewRateTable(raw), nil
}
