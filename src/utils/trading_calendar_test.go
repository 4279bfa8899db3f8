package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestSymbolMIC(t *testing.T) {
	tests := []struct {
		symbol string
		mic    string
	}{
		{"AAPL", "xnys"},
		{"VOD.L", "xlon"},
		{"AIR.PA", "xpar"},
		{"SAP.DE", "xfra"},
		{"7203.T", "xtks"},
		{"0700.HK", "xhkg"},
		{"BHP.AX", "xasx"},
		{"BRK.UNKNOWN", "xnys"}, // unmapped suffix falls back to NYSE
	}

	for _, tt := range tests {
		assert.Equal(t, tt.mic, SymbolMIC(tt.symbol), tt.symbol)
	}
}

// -----------------------------------------------------------------------------

func TestMarketStatusWeekend(t *testing.T) {
	// Saturday noon in New York: closed regardless of calendar source.
	saturday := time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)

	status := MarketStatus("AAPL", saturday)
	assert.Equal(t, "xnys", status.MIC)
	assert.False(t, status.Open)
}

// -----------------------------------------------------------------------------

func TestTradingCalendarFallbackHours(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tc := &TradingCalendar{MIC: "test", Fallback: true, Timezone: ny}

	// Tuesday 2025-06-03.
	assert.False(t, tc.IsOpenOnMinute(time.Date(2025, 6, 3, 9, 29, 0, 0, ny)))
	assert.True(t, tc.IsOpenOnMinute(time.Date(2025, 6, 3, 9, 30, 0, 0, ny)))
	assert.True(t, tc.IsOpenOnMinute(time.Date(2025, 6, 3, 15, 59, 0, 0, ny)))
	assert.False(t, tc.IsOpenOnMinute(time.Date(2025, 6, 3, 16, 0, 0, 0, ny)))

	// Weekend.
	assert.False(t, tc.IsOpenOnMinute(time.Date(2025, 6, 7, 12, 0, 0, 0, ny)))
	assert.False(t, tc.IsTradingDay(time.Date(2025, 6, 8, 12, 0, 0, 0, ny)))
	assert.True(t, tc.IsTradingDay(time.Date(2025, 6, 3, 12, 0, 0, 0, ny)))
}
