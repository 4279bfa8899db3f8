package yahoo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestFetchQuoteFullSnapshot(t *testing.T) {
	net := &stubNetwork{response: []byte(`{
		"quoteResponse": {
			"result": [{
				"symbol": "AAPL",
				"longName": "Apple Inc.",
				"shortName": "Apple",
				"regularMarketPrice": 190.5,
				"regularMarketChange": 1.5,
				"regularMarketChangePercent": 0.79
			}],
			"error": null
		}
	}`)}

	s := NewQuoteSource(testConfig(), net)

	quote, err := s.FetchQuote(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, "Apple Inc.", quote.DisplayName())
	require.NotNil(t, quote.Price)
	assert.Equal(t, 190.5, *quote.Price)
	require.NotNil(t, quote.Change)
	assert.Equal(t, 1.5, *quote.Change)

	assert.Equal(t, "https://quote.test/v7/finance/quote", net.lastURL)
	assert.Equal(t, "AAPL", net.lastParams["symbols"])
}

// -----------------------------------------------------------------------------

func TestFetchQuoteDerivesChangeFromPreviousClose(t *testing.T) {
	net := &stubNetwork{response: []byte(`{
		"quoteResponse": {
			"result": [{
				"symbol": "MSFT",
				"shortName": "Microsoft",
				"regularMarketPrice": 110.0,
				"regularMarketPreviousClose": 100.0
			}],
			"error": null
		}
	}`)}

	s := NewQuoteSource(testConfig(), net)

	quote, err := s.FetchQuote(context.Background(), "MSFT")
	require.NoError(t, err)

	require.NotNil(t, quote.Change)
	assert.InDelta(t, 10.0, *quote.Change, 1e-12)
	require.NotNil(t, quote.ChangePercent)
	assert.InDelta(t, 10.0, *quote.ChangePercent, 1e-12)
}

// -----------------------------------------------------------------------------

func TestFetchQuoteMissingFieldsStayNil(t *testing.T) {
	net := &stubNetwork{response: []byte(`{
		"quoteResponse": {
			"result": [{"symbol": "XYZ"}],
			"error": null
		}
	}`)}

	s := NewQuoteSource(testConfig(), net)

	quote, err := s.FetchQuote(context.Background(), "XYZ")
	require.NoError(t, err)

	assert.Nil(t, quote.Price)
	assert.Nil(t, quote.Change)
	assert.Nil(t, quote.ChangePercent)
	assert.Equal(t, "XYZ", quote.DisplayName())
}

// -----------------------------------------------------------------------------

func TestFetchQuoteSymbolMatchIsCaseInsensitive(t *testing.T) {
	net := &stubNetwork{response: []byte(`{
		"quoteResponse": {
			"result": [{"symbol": "aapl", "regularMarketPrice": 190.5}],
			"error": null
		}
	}`)}

	s := NewQuoteSource(testConfig(), net)

	quote, err := s.FetchQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, quote.Price)
}

// -----------------------------------------------------------------------------

func TestFetchQuoteNoResultIsError(t *testing.T) {
	net := &stubNetwork{response: []byte(`{
		"quoteResponse": {"result": [], "error": null}
	}`)}

	s := NewQuoteSource(testConfig(), net)

	_, err := s.FetchQuote(context.Background(), "BOGUS")
	require.Error(t, err)
}
