package core

import "stock-dashboard/src/models"

// -----------------------------------------------------------------------------

// AggregateBucket collapses a run of consecutive bars into one coarser bar:
// open from the first bar, close from the last, extreme high/low, summed
// volume. The caller supplies the bucket's start timestamp.
func AggregateBucket(startTime int64, bars []models.MBar) models.MBar {
	if len(bars) == 0 {
		return models.MBar{Timestamp: startTime}
	}

	agg := models.MBar{
		Timestamp: startTime,
		Open:      bars[0].Open,
		High:      bars[0].High,
		Low:       bars[0].Low,
		Close:     bars[len(bars)-1].Close,
	}

	for _, b := range bars {
		if b.High > agg.High {
			agg.High = b.High
		}
		if b.Low < agg.Low {
			agg.Low = b.Low
		}
		agg.Volume += b.Volume
	}

	return agg
}

// -----------------------------------------------------------------------------

// CalculateChangePercent calculates percentage change.
func CalculateChangePercent(current, previous float64) float64 {
	if previous == 0 {
		return 0.0
	}
	return (current - previous) / previous * 100
}
