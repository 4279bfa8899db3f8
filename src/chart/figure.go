package chart

import (
	"fmt"
	"math"
	"time"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// Figure construction
// -----------------------------------------------------------------------------
// Builds the three-panel dashboard figure from an augmented price series:
// price + Bollinger bands as candlesticks (row 1), the RSI oscillator with
// fixed 70/30 reference lines (row 2), and per-bar colored volume (row 3).
// All panels share one x-axis; the bottom panel carries the range slider.

const (
	bandColor    = "rgba(0, 150, 255, 0.3)"
	smaColor     = "orange"
	rsiColor     = "purple"
	upBarColor   = "green"
	downBarColor = "red"

	paperColor = "#111111"
	plotColor  = "#1e1e1e"
	fontColor  = "#e0e0e0"
)

// Panel domains, top to bottom.
var (
	priceDomain  = []float64{0.46, 1.0}
	rsiDomain    = []float64{0.24, 0.42}
	volumeDomain = []float64{0.0, 0.20}
)

// -----------------------------------------------------------------------------

// BuildFigure renders the augmented series into a figure document. The
// series must be non-empty; the caller guards the empty "no data" state.
func BuildFigure(series *models.MPriceSeries) *models.MFigure {
	x := timeAxis(series)

	opens := make([]float64, len(series.Bars))
	highs := make([]float64, len(series.Bars))
	lows := make([]float64, len(series.Bars))
	closes := make([]float64, len(series.Bars))
	volumes := make([]*float64, len(series.Bars))
	volumeColors := make([]string, len(series.Bars))

	for i, b := range series.Bars {
		opens[i] = b.Open
		highs[i] = b.High
		lows[i] = b.Low
		closes[i] = b.Close
		v := b.Volume
		volumes[i] = &v
		if b.Close >= b.Open {
			volumeColors[i] = upBarColor
		} else {
			volumeColors[i] = downBarColor
		}
	}

	traces := []models.MTrace{
		{
			Type:  "candlestick",
			Name:  "Price",
			X:     x,
			Open:  opens,
			High:  highs,
			Low:   lows,
			Close: closes,
			YAxis: "y",
		},
		{
			Type:  "scatter",
			Name:  "Upper BB",
			X:     x,
			Y:     optionalColumn(series.Upper),
			Line:  &models.MTraceLine{Color: bandColor, Width: 1},
			YAxis: "y",
		},
		{
			Type:  "scatter",
			Name:  "Lower BB",
			X:     x,
			Y:     optionalColumn(series.Lower),
			Line:  &models.MTraceLine{Color: bandColor, Width: 1},
			Fill:  "tonexty",
			YAxis: "y",
		},
		{
			Type:  "scatter",
			Name:  "SMA",
			X:     x,
			Y:     optionalColumn(series.SMA),
			Line:  &models.MTraceLine{Color: smaColor, Width: 1.5},
			YAxis: "y",
		},
		{
			Type:  "scatter",
			Name:  "RSI",
			X:     x,
			Y:     optionalColumn(series.RSI),
			Line:  &models.MTraceLine{Color: rsiColor, Width: 2},
			YAxis: "y2",
		},
		{
			Type:   "bar",
			Name:   "Volume",
			X:      x,
			Y:      volumes,
			Marker: &models.MTraceMarker{Colors: volumeColors},
			YAxis:  "y3",
		},
	}

	layout := models.MLayout{
		Title:        Title(series.Symbol),
		Height:       900,
		ShowLegend:   false,
		PaperBGColor: paperColor,
		PlotBGColor:  plotColor,
		Font:         &models.MFont{Color: fontColor},
		XAxis: &models.MAxis{
			Anchor:      "y3",
			RangeSlider: &models.MRangeSlider{Visible: true},
		},
		YAxis:  &models.MAxis{Title: "Price", Domain: priceDomain},
		YAxis2: &models.MAxis{Title: "RSI", Domain: rsiDomain, Range: []float64{0, 100}},
		YAxis3: &models.MAxis{Title: "Volume", Domain: volumeDomain},
		Shapes: []models.MShape{
			referenceLine(70, downBarColor),
			referenceLine(30, upBarColor),
		},
		Margin: &models.MMargin{Left: 60, Right: 20, Top: 30, Bottom: 30},
	}

	return &models.MFigure{Data: traces, Layout: layout}
}

// -----------------------------------------------------------------------------

// referenceLine draws a dashed horizontal line across the RSI panel.
func referenceLine(level float64, color string) models.MShape {
	return models.MShape{
		Type: "line",
		XRef: "paper",
		YRef: "y2",
		X0:   0,
		X1:   1,
		Y0:   level,
		Y1:   level,
		Line: &models.MTraceLine{Color: color, Width: 1, Dash: "dash"},
	}
}

// -----------------------------------------------------------------------------

// optionalColumn converts a NaN-marked column into a nullable one, so gaps
// survive JSON encoding.
func optionalColumn(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		val := v
		out[i] = &val
	}
	return out
}

// -----------------------------------------------------------------------------

// timeAxis formats bar timestamps, keeping the clock time for intraday
// intervals.
func timeAxis(series *models.MPriceSeries) []string {
	layout := "2006-01-02"
	if series.Interval == "1h" || series.Interval == "4h" {
		layout = "2006-01-02 15:04"
	}

	x := make([]string, len(series.Bars))
	for i, b := range series.Bars {
		x[i] = time.Unix(b.Timestamp, 0).UTC().Format(layout)
	}
	return x
}

// -----------------------------------------------------------------------------

// Title builds the price panel heading shown above the chart.
func Title(symbol string) string {
	return fmt.Sprintf("%s Price & Bollinger Bands", symbol)
}
