package core

import "math"

// -----------------------------------------------------------------------------

// Mean computes the arithmetic mean. NaN for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// -----------------------------------------------------------------------------

// SampleStd computes the sample standard deviation (n-1 denominator).
// A sample of fewer than two points has no defined deviation and yields NaN.
func SampleStd(data []float64) float64 {
	if len(data) < 2 {
		return math.NaN()
	}

	mean := Mean(data)

	varianceSum := 0.0
	for _, v := range data {
		varianceSum += (v - mean) * (v - mean)
	}
	return math.Sqrt(varianceSum / float64(len(data)-1))
}
