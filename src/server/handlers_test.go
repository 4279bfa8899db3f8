package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/config"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Stub collaborators
// -----------------------------------------------------------------------------

type stubQuoteSource struct {
	quote *models.MQuote
	err   error
}

func (s *stubQuoteSource) Name() string { return "stub-quote" }

func (s *stubQuoteSource) FetchQuote(ctx context.Context, symbol string) (*models.MQuote, error) {
	return s.quote, s.err
}

type stubHistorySource struct {
	bars []models.MBar
	err  error
}

func (s *stubHistorySource) Name() string { return "stub-history" }

func (s *stubHistorySource) NormalizeInterval(interval string) (string, int64) {
	if interval == "4h" {
		return "1h", 4 * 60 * 60
	}
	return interval, 0
}

func (s *stubHistorySource) FetchHistory(ctx context.Context, symbol, period, interval string) ([]models.MBar, error) {
	return s.bars, s.err
}

type stubDB struct {
	lookups  []models.MLookup
	recorded []models.MLookup
}

func (s *stubDB) Initialize() error { return nil }

func (s *stubDB) RecordLookup(lookup models.MLookup) error {
	s.recorded = append(s.recorded, lookup)
	return nil
}

func (s *stubDB) RecentLookups(limit int) ([]models.MLookup, error) {
	return s.lookups, nil
}

func (s *stubDB) Close() error { return nil }

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

func testBars(n int) []models.MBar {
	bars := make([]models.MBar, n)
	for i := range bars {
		price := 100 + float64(i)
		bars[i] = models.MBar{
			Timestamp: 1700006400 + int64(i)*86400,
			Open:      price,
			High:      price + 2,
			Low:       price - 1,
			Close:     price + 1,
			Volume:    1000,
		}
	}
	return bars
}

func testServerConfig() *config.Config {
	return &config.Config{
		MConfig: &models.MConfig{
			Name:     "Stock Dashboard",
			Host:     "127.0.0.1",
			Port:     8080,
			LogLevel: "INFO",
			Storage: models.MStorageConfig{
				DBType:            "sqlite",
				DBPath:            ":memory:",
				RecentLookupLimit: 10,
			},
			Dashboard: models.MDashboardConfig{
				DefaultSymbol:   "AAPL",
				DefaultPeriod:   "1y",
				DefaultInterval: "1d",
				DefaultWindow:   20,
				DefaultStdDev:   2.0,
				Periods:         []string{"1mo", "3mo", "6mo", "1y", "2y", "5y"},
				Intervals:       []string{"1h", "4h", "1d", "1wk", "1mo"},
			},
		},
	}
}

func newTestServer(quote *stubQuoteSource, history *stubHistorySource, db *stubDB) *DashboardServer {
	return NewDashboardServer(
		testServerConfig(),
		logger.NewLogger("test"),
		quote,
		history,
		analysis.NewAnalysisFacade(logger.NewLogger("test-analysis")),
		db,
	)
}

func doRequest(t *testing.T, s *DashboardServer, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Engine().ServeHTTP(w, req)

	body := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

// -----------------------------------------------------------------------------
// /api/analyze
// -----------------------------------------------------------------------------

func TestAnalyzeHappyPath(t *testing.T) {
	name := "Apple Inc."
	price := 190.5
	quote := &stubQuoteSource{quote: &models.MQuote{Symbol: "AAPL", Name: &name, Price: &price}}
	history := &stubHistorySource{bars: testBars(30)}
	db := &stubDB{}

	s := newTestServer(quote, history, db)

	w, body := doRequest(t, s, "/api/analyze?symbol=aapl&period=1y&interval=1d&window=20&std_dev=2.0")
	require.Equal(t, http.StatusOK, w.Code)

	var result models.MAnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, "AAPL", result.Request.Symbol) // uppercased
	assert.NotNil(t, result.Quote)
	assert.Empty(t, result.QuoteError)
	assert.Empty(t, result.ChartError)
	assert.NotNil(t, result.Figure)
	assert.Equal(t, 30, result.BarCount)
	assert.NotNil(t, body["market"])

	// The run is recorded even though nothing failed.
	require.Len(t, db.recorded, 1)
	assert.Equal(t, "AAPL", db.recorded[0].Symbol)
	assert.Equal(t, 30, db.recorded[0].BarCount)
}

func TestAnalyzeFailureDomainsAreIndependent(t *testing.T) {
	t.Run("quote fails, chart survives", func(t *testing.T) {
		quote := &stubQuoteSource{err: errors.New("quote endpoint down")}
		history := &stubHistorySource{bars: testBars(30)}

		s := newTestServer(quote, history, &stubDB{})

		w, _ := doRequest(t, s, "/api/analyze?symbol=AAPL")
		require.Equal(t, http.StatusOK, w.Code)

		var result models.MAnalysisResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

		assert.Nil(t, result.Quote)
		assert.Contains(t, result.QuoteError, "Could not retrieve fundamentals")
		assert.NotNil(t, result.Figure)
		assert.Empty(t, result.ChartError)
	})

	t.Run("chart fails, quote survives", func(t *testing.T) {
		price := 190.5
		quote := &stubQuoteSource{quote: &models.MQuote{Symbol: "AAPL", Price: &price}}
		history := &stubHistorySource{err: errors.New("chart endpoint down")}

		s := newTestServer(quote, history, &stubDB{})

		w, _ := doRequest(t, s, "/api/analyze?symbol=AAPL")
		require.Equal(t, http.StatusOK, w.Code)

		var result models.MAnalysisResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

		assert.NotNil(t, result.Quote)
		assert.Contains(t, result.ChartError, "Error retrieving history")
		assert.Nil(t, result.Figure)
	})
}

func TestAnalyzeEmptyHistoryIsWarningNotError(t *testing.T) {
	quote := &stubQuoteSource{err: errors.New("no quote")}
	history := &stubHistorySource{bars: []models.MBar{}}

	s := newTestServer(quote, history, &stubDB{})

	w, _ := doRequest(t, s, "/api/analyze?symbol=DELISTED")
	require.Equal(t, http.StatusOK, w.Code)

	var result models.MAnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, "No historical price data found.", result.Warning)
	assert.Empty(t, result.ChartError)
	assert.Nil(t, result.Figure)
	assert.Equal(t, 0, result.BarCount)
}

func TestAnalyzeValidation(t *testing.T) {
	s := newTestServer(&stubQuoteSource{}, &stubHistorySource{}, &stubDB{})

	tests := []struct {
		name string
		path string
	}{
		{"blank symbol", "/api/analyze?symbol=%20"},
		{"unknown period", "/api/analyze?symbol=AAPL&period=10y"},
		{"unknown interval", "/api/analyze?symbol=AAPL&interval=5m"},
		{"zero window", "/api/analyze?symbol=AAPL&window=0"},
		{"non-numeric window", "/api/analyze?symbol=AAPL&window=abc"},
		{"negative std dev", "/api/analyze?symbol=AAPL&std_dev=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(t, s, tt.path)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAnalyzeDefaultsApplied(t *testing.T) {
	quote := &stubQuoteSource{err: errors.New("no quote")}
	history := &stubHistorySource{bars: testBars(5)}
	db := &stubDB{}

	s := newTestServer(quote, history, db)

	w, _ := doRequest(t, s, "/api/analyze")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, db.recorded, 1)
	assert.Equal(t, "AAPL", db.recorded[0].Symbol)
	assert.Equal(t, "1y", db.recorded[0].Period)
	assert.Equal(t, "1d", db.recorded[0].Interval)
	assert.Equal(t, 20, db.recorded[0].Window)
	assert.Equal(t, 2.0, db.recorded[0].StdDev)
}

// -----------------------------------------------------------------------------
// Supporting endpoints
// -----------------------------------------------------------------------------

func TestGetConfig(t *testing.T) {
	s := newTestServer(&stubQuoteSource{}, &stubHistorySource{}, &stubDB{})

	w, body := doRequest(t, s, "/api/config")
	require.Equal(t, http.StatusOK, w.Code)

	var periods []string
	require.NoError(t, json.Unmarshal(body["periods"], &periods))
	assert.Contains(t, periods, "1y")

	var defaults map[string]interface{}
	require.NoError(t, json.Unmarshal(body["defaults"], &defaults))
	assert.Equal(t, "AAPL", defaults["symbol"])
}

func TestGetHealth(t *testing.T) {
	s := newTestServer(&stubQuoteSource{}, &stubHistorySource{}, &stubDB{})

	w, body := doRequest(t, s, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"ok"`, string(body["status"]))
}

func TestGetRecent(t *testing.T) {
	db := &stubDB{lookups: []models.MLookup{
		{Symbol: "TSLA", Period: "1y", Interval: "1d"},
		{Symbol: "AAPL", Period: "6mo", Interval: "1h"},
	}}

	s := newTestServer(&stubQuoteSource{}, &stubHistorySource{}, db)

	w, body := doRequest(t, s, "/api/recent")
	require.Equal(t, http.StatusOK, w.Code)

	var lookups []models.MLookup
	require.NoError(t, json.Unmarshal(body["lookups"], &lookups))
	require.Len(t, lookups, 2)
	assert.Equal(t, "TSLA", lookups[0].Symbol)
}

func TestGetRecentEmptyStoreReturnsEmptyList(t *testing.T) {
	s := newTestServer(&stubQuoteSource{}, &stubHistorySource{}, &stubDB{})

	_, body := doRequest(t, s, "/api/recent")
	assert.Equal(t, "[]", string(body["lookups"]))
}
