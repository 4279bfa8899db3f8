package interfaces

import (
	"context"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// Provider contracts. Each fetch has three outcomes the caller must handle
// explicitly: data, an empty (but valid) result, or a failure. History
// reports "no data" as an empty non-nil slice with a nil error.
// -----------------------------------------------------------------------------

type IQuoteSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchQuote retrieves the fundamentals snapshot for one symbol.
	FetchQuote(ctx context.Context, symbol string) (*models.MQuote, error)
}

// -----------------------------------------------------------------------------

type IHistorySource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// NormalizeInterval maps a requested candle interval to the interval
	// actually fetched upstream plus a resample bucket width in seconds.
	// A width of 0 means the interval is natively supported and no
	// resampling is needed.
	NormalizeInterval(interval string) (fetchInterval string, bucketSeconds int64)

	// -----------------------------------------------------------------------------

	// FetchHistory retrieves OHLCV bars for the symbol over the requested
	// period at the given (already normalized) interval, ordered by
	// timestamp ascending.
	FetchHistory(ctx context.Context, symbol, period, interval string) ([]models.MBar, error)
}
