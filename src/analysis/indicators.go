package analysis

import (
	"math"

	"stock-dashboard/src/analysis/core"
)

// RSIPeriod is the fixed lookback for the oscillator. It is deliberately
// independent of the user-configurable Bollinger window.
const RSIPeriod = 14

// -----------------------------------------------------------------------------
// Rolling-window indicators over a close-price column. All functions are pure
// and return a column of the same length as the input, with NaN marking
// positions where the value is undefined.
//
// SMA and RollingStd use a shrinking window: at position i the window is the
// min(i+1, w) most recent points, so the average is defined from the very
// first bar. RSI uses a strict window and stays undefined until a full
// RSIPeriod of deltas exists.
// -----------------------------------------------------------------------------

// SMA computes the trailing simple moving average with a shrinking window.
func SMA(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		out[i] = core.Mean(closes[start : i+1])
	}
	return out
}

// -----------------------------------------------------------------------------

// RollingStd computes the trailing sample standard deviation over the same
// shrinking window as SMA. The first position is always NaN: one point has
// no sample deviation.
func RollingStd(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		out[i] = core.SampleStd(closes[start : i+1])
	}
	return out
}

// -----------------------------------------------------------------------------

// BollingerBands returns the moving average, rolling deviation, and the
// upper/lower bands at stdDev deviations. NaN deviations propagate into the
// bands.
func BollingerBands(closes []float64, window int, stdDev float64) (sma, std, upper, lower []float64) {
	sma = SMA(closes, window)
	std = RollingStd(closes, window)

	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		upper[i] = sma[i] + stdDev*std[i]
		lower[i] = sma[i] - stdDev*std[i]
	}
	return sma, std, upper, lower
}

// -----------------------------------------------------------------------------

// RSI computes the relative strength index over period-over-period deltas.
// Position i needs period deltas, so the column is NaN for i < period.
// A window with zero average loss and positive average gain is pinned to
// exactly 100; a completely flat window stays undefined.
func RSI(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if period < 1 {
		return out
	}

	for i := period; i < len(closes); i++ {
		var gainSum, lossSum float64
		for j := i - period + 1; j <= i; j++ {
			delta := closes[j] - closes[j-1]
			if delta > 0 {
				gainSum += delta
			} else {
				lossSum += -delta
			}
		}

		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)

		switch {
		case avgLoss == 0 && avgGain == 0:
			// flat window, no defined strength ratio
		case avgLoss == 0:
			out[i] = 100
		default:
			rs := avgGain / avgLoss
			out[i] = 100 - 100/(1+rs)
		}
	}

	return out
}
