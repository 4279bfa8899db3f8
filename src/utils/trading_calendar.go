package utils

import (
	"strings"
	"time"

	"github.com/scmhub/calendar"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------

// micBySuffix maps Yahoo-style symbol suffixes to exchange MIC codes
// (ISO 10383). Bare symbols default to NYSE.
var micBySuffix = map[string]string{
	".L":  "xlon",
	".PA": "xpar",
	".DE": "xfra",
	".AS": "xams",
	".BR": "xbru",
	".MI": "xmil",
	".MC": "xmad",
	".ST": "xsto",
	".CO": "xcse",
	".HE": "xhel",
	".VI": "xwbo",
	".SW": "xswx",
	".TO": "xtse",
	".V":  "xtsx",
	".T":  "xtks",
	".HK": "xhkg",
	".AX": "xasx",
	".KS": "xkrx",
	".TW": "xtai",
	".SS": "xshg",
	".SZ": "xshe",
}

const defaultMIC = "xnys"

// -----------------------------------------------------------------------------

// TradingCalendar answers whether a symbol's exchange is trading, backed by
// scmhub/calendar with a Mon-Fri 09:30-16:00 New York fallback when no
// calendar is available for the MIC.
type TradingCalendar struct {
	MIC      string
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// SymbolMIC resolves a symbol's exchange MIC from its suffix.
func SymbolMIC(symbol string) string {
	if idx := strings.LastIndex(symbol, "."); idx >= 0 {
		if mic, ok := micBySuffix[symbol[idx:]]; ok {
			return mic
		}
	}
	return defaultMIC
}

// -----------------------------------------------------------------------------

// GetCalendar builds the trading calendar for a symbol's exchange.
func GetCalendar(symbol string) *TradingCalendar {
	mic := SymbolMIC(symbol)

	cal := calendar.GetCalendar(mic)
	if cal == nil {
		cal = calendar.GetCalendar(defaultMIC)
	}

	if cal == nil {
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC
		}
		return &TradingCalendar{MIC: mic, Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{MIC: mic, Calendar: cal, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

// IsTradingDay reports whether date is a business day on this exchange.
func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenOnMinute checks if the market is open at a specific minute.
func (tc *TradingCalendar) IsOpenOnMinute(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Fallback {
		if !tc.IsTradingDay(t) {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 local exchange time
		return (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16
	}

	return tc.Calendar.IsOpen(t)
}

// -----------------------------------------------------------------------------

// MarketStatus resolves the open/closed badge for a symbol at time t.
func MarketStatus(symbol string, t time.Time) models.MMarketStatus {
	tc := GetCalendar(symbol)
	return models.MMarketStatus{
		MIC:  tc.MIC,
		Open: tc.IsOpenOnMinute(t),
	}
}
