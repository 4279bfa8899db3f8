package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/helpers"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------

// QuoteSource fetches the fundamentals snapshot from the Yahoo Finance quote
// endpoint. It is independent of the chart endpoint: a failure here never
// touches the history path.
type QuoteSource struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewQuoteSource(cfg *models.MConfig, netMgr interfaces.INetworkManager) *QuoteSource {
	return &QuoteSource{
		Config:  cfg,
		Network: netMgr,
		Logger:  logger.NewLogger("YahooQuoteSource"),
	}
}

// -----------------------------------------------------------------------------

func (s *QuoteSource) Name() string {
	return "yahoo-quote"
}

// -----------------------------------------------------------------------------

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			LongName                   *string  `json:"longName"`
			ShortName                  *string  `json:"shortName"`
			RegularMarketPrice         *float64 `json:"regularMarketPrice"`
			RegularMarketChange        *float64 `json:"regularMarketChange"`
			RegularMarketChangePct     *float64 `json:"regularMarketChangePercent"`
			RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

// -----------------------------------------------------------------------------

// FetchQuote retrieves the {name, price, change, changePercent} snapshot.
// Fields the provider omits stay nil; they surface as explicit unknowns,
// never as a missing-key failure.
func (s *QuoteSource) FetchQuote(ctx context.Context, symbol string) (*models.MQuote, error) {
	params := map[string]string{
		"symbols": symbol,
	}

	respBytes, err := s.Network.Get(ctx, s.Config.Providers.QuoteURL, params)
	if err != nil {
		return nil, helpers.NewDataSourceError(fmt.Sprintf("quote fetch for %s failed", symbol), err)
	}

	var resp quoteResponse
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, helpers.NewDataSourceError("quote response unmarshal failed", err)
	}

	if resp.QuoteResponse.Error != nil {
		return nil, helpers.NewDataSourceError(
			fmt.Sprintf("provider error: %s - %s", resp.QuoteResponse.Error.Code, resp.QuoteResponse.Error.Description), nil)
	}

	for _, r := range resp.QuoteResponse.Result {
		if !strings.EqualFold(r.Symbol, symbol) {
			continue
		}

		quote := &models.MQuote{
			Symbol:        symbol,
			Price:         r.RegularMarketPrice,
			Change:        r.RegularMarketChange,
			ChangePercent: r.RegularMarketChangePct,
		}

		switch {
		case r.LongName != nil && *r.LongName != "":
			quote.Name = r.LongName
		case r.ShortName != nil && *r.ShortName != "":
			quote.Name = r.ShortName
		}

		// Derive the change columns from the previous close when the
		// provider omits them but gives us enough to compute.
		if quote.Change == nil && r.RegularMarketPrice != nil && r.RegularMarketPreviousClose != nil {
			change := *r.RegularMarketPrice - *r.RegularMarketPreviousClose
			quote.Change = &change
		}
		if quote.ChangePercent == nil && r.RegularMarketPrice != nil &&
			r.RegularMarketPreviousClose != nil && *r.RegularMarketPreviousClose != 0 {
			pct := core.CalculateChangePercent(*r.RegularMarketPrice, *r.RegularMarketPreviousClose)
			quote.ChangePercent = &pct
		}

		s.Logger.Info("Fetched quote for %s (%s)", symbol, quote.DisplayName())
		return quote, nil
	}

	return nil, helpers.NewDataSourceError(fmt.Sprintf("no quote returned for %s", symbol), nil)
}
