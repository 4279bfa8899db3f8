package models

import "time"

// MLookup records one triggered analysis request. Only the request metadata
// is stored; the fetched series itself is never persisted.
type MLookup struct {
	Symbol      string    `json:"symbol"`
	Period      string    `json:"period"`
	Interval    string    `json:"interval"`
	Window      int       `json:"window"`
	StdDev      float64   `json:"std_dev"`
	BarCount    int       `json:"bar_count"`
	RequestedAt time.Time `json:"requested_at"`
}
