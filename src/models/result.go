package models

// MAnalysisResult is the full payload for one triggered run. The fundamentals
// and chart halves fail independently: either side can carry an error while
// the other carries data. Warning is the distinct "provider returned no bars"
// state and is not an error.
type MAnalysisResult struct {
	Request MAnalysisRequest `json:"request"`

	Quote      *MQuote `json:"quote"`
	QuoteError string  `json:"quote_error,omitempty"`

	Figure     *MFigure `json:"figure"`
	ChartError string   `json:"chart_error,omitempty"`
	Warning    string   `json:"warning,omitempty"`

	Market   *MMarketStatus `json:"market,omitempty"`
	BarCount int            `json:"bar_count"`

	// Unix seconds when the run completed.
	Timestamp int64 `json:"timestamp"`
}

// -----------------------------------------------------------------------------
// Server state for websocket clients
// -----------------------------------------------------------------------------

type MDashboardState struct {
	Type      string           `json:"type"` // "INITIAL" or "UPDATE"
	Result    *MAnalysisResult `json:"result"`
	Timestamp int64            `json:"timestamp"`
}
