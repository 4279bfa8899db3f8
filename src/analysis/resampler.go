package analysis

import (
	"sort"

	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------

// TimeSeriesResampler buckets finer bars into coarser ones, used when the
// upstream provider does not support a requested candle interval natively.
type TimeSeriesResampler struct{}

// -----------------------------------------------------------------------------

// Resample groups bars into non-overlapping buckets of widthSeconds, aligned
// to timestamp - timestamp mod width, and aggregates each bucket (first open,
// max high, min low, last close, summed volume). Buckets with no contributing
// bars are simply absent from the output. The result keeps ascending order.
func (r *TimeSeriesResampler) Resample(bars []models.MBar, widthSeconds int64) []models.MBar {
	if len(bars) == 0 || widthSeconds <= 0 {
		return []models.MBar{}
	}

	sorted := make([]models.MBar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	out := make([]models.MBar, 0, len(sorted)/2+1)

	bucketStart, _ := CalculateWindowBoundaries(sorted[0].Timestamp, widthSeconds)
	runStart := 0

	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) {
			start, _ := CalculateWindowBoundaries(sorted[i].Timestamp, widthSeconds)
			if start == bucketStart {
				continue
			}
			// close the current bucket and open the next
			out = append(out, core.AggregateBucket(bucketStart, sorted[runStart:i]))
			bucketStart = start
			runStart = i
		} else {
			out = append(out, core.AggregateBucket(bucketStart, sorted[runStart:]))
		}
	}

	return out
}

// -----------------------------------------------------------------------------

// CalculateWindowBoundaries returns the [start, end) bucket containing ts.
func CalculateWindowBoundaries(ts int64, window int64) (int64, int64) {
	start := ts - (ts % window)
	return start, start + window
}
