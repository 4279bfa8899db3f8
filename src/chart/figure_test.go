package chart

import (
	"encoding/json"
	"math"
	"testing"

	"stock-dashboard/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func testSeries() *models.MPriceSeries {
	nan := math.NaN()
	return &models.MPriceSeries{
		Symbol:   "AAPL",
		Interval: "1d",
		Bars: []models.MBar{
			{Timestamp: 1700006400, Open: 100, High: 105, Low: 99, Close: 101, Volume: 1000},
			{Timestamp: 1700092800, Open: 101, High: 103, Low: 100, Close: 100, Volume: 1100},
			{Timestamp: 1700179200, Open: 100, High: 104, Low: 99, Close: 100, Volume: 900},
		},
		SMA:   []float64{101, 100.5, 100.5},
		Std:   []float64{nan, 0.5, 0.5},
		Upper: []float64{nan, 101.5, 101.5},
		Lower: []float64{nan, 99.5, 99.5},
		RSI:   []float64{nan, nan, 55},
	}
}

// -----------------------------------------------------------------------------

func TestBuildFigureTraceLayout(t *testing.T) {
	fig := BuildFigure(testSeries())
	require.Len(t, fig.Data, 6)

	byName := map[string]models.MTrace{}
	for _, tr := range fig.Data {
		byName[tr.Name] = tr
	}

	assert.Equal(t, "candlestick", byName["Price"].Type)
	assert.Equal(t, "y", byName["Price"].YAxis)
	assert.Equal(t, "y2", byName["RSI"].YAxis)
	assert.Equal(t, "y3", byName["Volume"].YAxis)
	assert.Equal(t, "tonexty", byName["Lower BB"].Fill)

	// Lower band is traced immediately after the upper band so the fill
	// spans the channel between them.
	assert.Equal(t, "Upper BB", fig.Data[1].Name)
	assert.Equal(t, "Lower BB", fig.Data[2].Name)

	// RSI panel is clamped to [0, 100] with both reference lines.
	require.NotNil(t, fig.Layout.YAxis2)
	assert.Equal(t, []float64{0, 100}, fig.Layout.YAxis2.Range)
	require.Len(t, fig.Layout.Shapes, 2)
	assert.Equal(t, 70.0, fig.Layout.Shapes[0].Y0)
	assert.Equal(t, 30.0, fig.Layout.Shapes[1].Y0)

	// The range slider hangs off the shared bottom axis.
	require.NotNil(t, fig.Layout.XAxis)
	assert.Equal(t, "y3", fig.Layout.XAxis.Anchor)
	require.NotNil(t, fig.Layout.XAxis.RangeSlider)
	assert.True(t, fig.Layout.XAxis.RangeSlider.Visible)
}

// -----------------------------------------------------------------------------

func TestBuildFigureUndefinedValuesBecomeNulls(t *testing.T) {
	fig := BuildFigure(testSeries())

	var rsi models.MTrace
	for _, tr := range fig.Data {
		if tr.Name == "RSI" {
			rsi = tr
		}
	}

	require.Len(t, rsi.Y, 3)
	assert.Nil(t, rsi.Y[0])
	assert.Nil(t, rsi.Y[1])
	require.NotNil(t, rsi.Y[2])
	assert.Equal(t, 55.0, *rsi.Y[2])

	// NaN must never reach the serialized document.
	encoded, err := json.Marshal(fig)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "null")
}

// -----------------------------------------------------------------------------

func TestBuildFigureVolumeColors(t *testing.T) {
	fig := BuildFigure(testSeries())

	var volume models.MTrace
	for _, tr := range fig.Data {
		if tr.Name == "Volume" {
			volume = tr
		}
	}

	require.NotNil(t, volume.Marker)
	// close >= open counts as an up bar, including the flat third bar.
	assert.Equal(t, []string{"green", "red", "green"}, volume.Marker.Colors)
}

// -----------------------------------------------------------------------------

func TestTimeAxisKeepsClockTimeIntraday(t *testing.T) {
	series := testSeries()

	series.Interval = "1d"
	assert.Equal(t, "2023-11-15", timeAxis(series)[0])

	series.Interval = "1h"
	assert.Equal(t, "2023-11-15 00:00", timeAxis(series)[0])

	series.Interval = "4h"
	assert.Equal(t, "2023-11-15 00:00", timeAxis(series)[0])
}
