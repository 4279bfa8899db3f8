package models

// -----------------------------------------------------------------------------
// Chart figure document
// -----------------------------------------------------------------------------
// The server never rasterizes anything; it emits a Plotly-shaped figure
// document (traces + layout) and the page hands it to the plotting library
// untouched. Optional numeric columns use *float64 so an undefined value
// (NaN in-process) marshals as JSON null, which the plotting library renders
// as a gap.

type MFigure struct {
	Data   []MTrace `json:"data"`
	Layout MLayout  `json:"layout"`
}

type MTrace struct {
	Type string     `json:"type"`
	Name string     `json:"name,omitempty"`
	X    []string   `json:"x"`
	Y    []*float64 `json:"y,omitempty"`

	// Candlestick columns
	Open  []float64 `json:"open,omitempty"`
	High  []float64 `json:"high,omitempty"`
	Low   []float64 `json:"low,omitempty"`
	Close []float64 `json:"close,omitempty"`

	Line   *MTraceLine   `json:"line,omitempty"`
	Marker *MTraceMarker `json:"marker,omitempty"`
	Fill   string        `json:"fill,omitempty"`

	XAxis string `json:"xaxis,omitempty"`
	YAxis string `json:"yaxis,omitempty"`
}

type MTraceLine struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

type MTraceMarker struct {
	// One color per bar for the volume panel.
	Colors []string `json:"color,omitempty"`
}

type MLayout struct {
	Title        string   `json:"title,omitempty"`
	Height       int      `json:"height"`
	ShowLegend   bool     `json:"showlegend"`
	PaperBGColor string   `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string   `json:"plot_bgcolor,omitempty"`
	Font         *MFont   `json:"font,omitempty"`
	XAxis        *MAxis   `json:"xaxis,omitempty"`
	YAxis        *MAxis   `json:"yaxis,omitempty"`
	YAxis2       *MAxis   `json:"yaxis2,omitempty"`
	YAxis3       *MAxis   `json:"yaxis3,omitempty"`
	Shapes       []MShape `json:"shapes,omitempty"`
	Margin       *MMargin `json:"margin,omitempty"`
}

type MFont struct {
	Color string `json:"color,omitempty"`
}

type MAxis struct {
	Title       string        `json:"title,omitempty"`
	Domain      []float64     `json:"domain,omitempty"`
	Range       []float64     `json:"range,omitempty"`
	Anchor      string        `json:"anchor,omitempty"`
	RangeSlider *MRangeSlider `json:"rangeslider,omitempty"`
}

type MRangeSlider struct {
	Visible bool `json:"visible"`
}

// MShape draws the fixed RSI reference lines.
type MShape struct {
	Type string      `json:"type"`
	XRef string      `json:"xref"`
	YRef string      `json:"yref"`
	X0   float64     `json:"x0"`
	X1   float64     `json:"x1"`
	Y0   float64     `json:"y0"`
	Y1   float64     `json:"y1"`
	Line *MTraceLine `json:"line,omitempty"`
}

type MMargin struct {
	Left   int `json:"l"`
	Right  int `json:"r"`
	Top    int `json:"t"`
	Bottom int `json:"b"`
}
