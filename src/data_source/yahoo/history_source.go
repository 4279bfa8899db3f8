package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------

// nativeIntervals are the candle intervals the chart endpoint serves
// directly. The 4h interval is not among them: it is fetched as 1h and
// resampled by the caller. This fallback is deliberately narrow; no other
// interval pair is rewritten.
var nativeIntervals = map[string]bool{
	"1h":  true,
	"1d":  true,
	"1wk": true,
	"1mo": true,
}

const fourHourSeconds = 4 * 60 * 60

// -----------------------------------------------------------------------------

// HistorySource fetches OHLCV bars from the Yahoo Finance chart endpoint.
type HistorySource struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewHistorySource(cfg *models.MConfig, netMgr interfaces.INetworkManager) *HistorySource {
	return &HistorySource{
		Config:  cfg,
		Network: netMgr,
		Logger:  logger.NewLogger("YahooHistorySource"),
	}
}

// -----------------------------------------------------------------------------

func (s *HistorySource) Name() string {
	return "yahoo-history"
}

// -----------------------------------------------------------------------------

// NormalizeInterval maps the requested interval to one the provider supports.
// For 4h it returns 1h plus the bucket width the caller must resample with;
// everything else passes through with a zero width.
func (s *HistorySource) NormalizeInterval(interval string) (string, int64) {
	if interval == "4h" {
		return "1h", fourHourSeconds
	}
	return interval, 0
}

// -----------------------------------------------------------------------------

// FetchHistory retrieves bars for symbol over the period at the (already
// normalized) interval. An empty non-nil slice is the valid "no data"
// outcome; errors are reserved for provider or transport failures.
func (s *HistorySource) FetchHistory(ctx context.Context, symbol, period, interval string) ([]models.MBar, error) {
	if !nativeIntervals[interval] {
		return nil, helpers.NewDataSourceError(
			fmt.Sprintf("interval %q is not supported upstream", interval), nil)
	}

	params := map[string]string{
		"interval":       interval,
		"range":          period,
		"includePrePost": "false",
	}

	url := fmt.Sprintf("%s/%s", s.Config.Providers.ChartURL, symbol)

	respBytes, err := s.Network.Get(ctx, url, params)
	if err != nil {
		return nil, helpers.NewDataSourceError(fmt.Sprintf("history fetch for %s failed", symbol), err)
	}

	return s.parseChartResponse(symbol, respBytes)
}

// -----------------------------------------------------------------------------

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol          string `json:"symbol"`
				DataGranularity string `json:"dataGranularity"`
				Range           string `json:"range"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					High   []*float64 `json:"high"`   // Pointers to handle null
					Low    []*float64 `json:"low"`    // Pointers to handle null
					Open   []*float64 `json:"open"`   // Pointers to handle null
					Close  []*float64 `json:"close"`  // Pointers to handle null
					Volume []*float64 `json:"volume"` // Pointers to handle null
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// -----------------------------------------------------------------------------

func (s *HistorySource) parseChartResponse(symbol string, data []byte) ([]models.MBar, error) {
	var resp chartResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, helpers.NewDataSourceError("chart response unmarshal failed", err)
	}

	if resp.Chart.Error != nil {
		return nil, helpers.NewDataSourceError(
			fmt.Sprintf("provider error: %s - %s", resp.Chart.Error.Code, resp.Chart.Error.Description), nil)
	}

	if len(resp.Chart.Result) == 0 {
		return nil, helpers.NewDataSourceError(fmt.Sprintf("no result in response for %s", symbol), nil)
	}

	result := resp.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		// A valid response with no bars: the "no data" outcome, not an error.
		s.Logger.Info("No bars returned for %s", symbol)
		return []models.MBar{}, nil
	}

	if len(result.Indicators.Quote) == 0 {
		return nil, helpers.NewDataSourceError(fmt.Sprintf("no quote columns in response for %s", symbol), nil)
	}

	quote := result.Indicators.Quote[0]

	if len(result.Timestamp) != len(quote.Close) ||
		len(result.Timestamp) != len(quote.Open) ||
		len(result.Timestamp) != len(quote.High) ||
		len(result.Timestamp) != len(quote.Low) ||
		len(result.Timestamp) != len(quote.Volume) {
		return nil, helpers.NewDataSourceError(fmt.Sprintf("column alignment error for %s", symbol), nil)
	}

	bars := make([]models.MBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// Bars with any null column are absent bars; they are dropped, not
		// filled.
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil ||
			quote.Close[i] == nil || quote.Volume[i] == nil {
			s.Logger.Debug("Dropping incomplete bar for %s at index %d", symbol, i)
			continue
		}

		if *quote.Close[i] <= 0 || *quote.Volume[i] < 0 {
			s.Logger.Debug("Dropping invalid bar for %s: close=%f, volume=%f", symbol, *quote.Close[i], *quote.Volume[i])
			continue
		}

		bars = append(bars, models.MBar{
			Timestamp: ts,
			Open:      *quote.Open[i],
			High:      *quote.High[i],
			Low:       *quote.Low[i],
			Close:     *quote.Close[i],
			Volume:    *quote.Volume[i],
		})
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Timestamp < bars[j].Timestamp
	})

	// Enforce strictly increasing timestamps: on duplicates keep the last
	// occurrence, which carries the provider's latest values for the bucket.
	deduped := bars[:0]
	for i, b := range bars {
		if i+1 < len(bars) && bars[i+1].Timestamp == b.Timestamp {
			continue
		}
		deduped = append(deduped, b)
	}

	if len(deduped) > 0 {
		s.Logger.Info("Fetched %s: %d bars [%d -> %d]",
			symbol, len(deduped), deduped[0].Timestamp, deduped[len(deduped)-1].Timestamp)
	}

	return deduped, nil
}
