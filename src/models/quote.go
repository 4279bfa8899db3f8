package models

// MQuote is the fundamentals snapshot for one symbol. The provider omits
// fields freely, so every field is optional; a nil pointer is the explicit
// "unknown" value and marshals to JSON null for the page to display as N/A.
type MQuote struct {
	Symbol        string   `json:"symbol"`
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"change_percent"`
}

// DisplayName returns the company name, falling back to the symbol.
func (q *MQuote) DisplayName() string {
	if q.Name != nil && *q.Name != "" {
		return *q.Name
	}
	return q.Symbol
}
