package models

// MAnalysisRequest is the immutable per-run configuration built from the
// sidebar values. It is constructed once per triggered analysis and passed
// down the pipeline, never mutated.
type MAnalysisRequest struct {
	Symbol   string  `json:"symbol"`
	Period   string  `json:"period"`
	Interval string  `json:"interval"`
	Window   int     `json:"window"`
	StdDev   float64 `json:"std_dev"`
}
