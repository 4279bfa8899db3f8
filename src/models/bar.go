package models

// MBar is one OHLCV bar. Timestamp is unix seconds for the bar's bucket start.
type MBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// MPriceSeries is the per-request working set: the fetched bars plus the
// derived indicator columns, all aligned by index with Bars. Undefined
// derived values are NaN. Built fresh on every analysis run and discarded
// after the chart payload is assembled.
type MPriceSeries struct {
	Symbol   string
	Interval string
	Bars     []MBar

	SMA   []float64
	Std   []float64
	Upper []float64
	Lower []float64
	RSI   []float64
}

// Closes extracts the close column.
func (s *MPriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
