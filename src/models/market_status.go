package models

// MMarketStatus reports whether the symbol's exchange is currently trading.
type MMarketStatus struct {
	MIC  string `json:"mic"`
	Open bool   `json:"open"`
}
