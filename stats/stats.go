// Package stats provides small sample-statistics helpers over float slices.
package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySample is returned when a statistic needs more observations than
// the sample holds.
var ErrEmptySample = errors.New("not enough observations")

// Mean returns the arithmetic mean of the sample.
func Mean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, fmt.Errorf("Mean: %w", ErrEmptySample)
	}
	sum := 0.0
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample)), nil
}

// SampleVariance returns the unbiased (n-1 denominator) sample variance.
func SampleVariance(sample []float64) (float64, error) {
	if len(sample) < 2 {
		return 0, fmt.Errorf("SampleVariance: %w (got %d)", ErrEmptySample, len(sample))
	}
	m, err := Mean(sample)
	if err != nil {
		return 0, err
	}
	accum := 0.0
	for _, v := range sample {
		accum += (v - m) * (v - m)
	}
	return accum / float64(len(sample)-1), nil
}

// StdDev returns the sample standard deviation.
func StdDev(sample []float64) (float64, error) {
	v, err := SampleVariance(sample)
	if err != nil {
		return 0, fmt.Errorf("StdDev: %w", err)
	}
	return math.Sqrt(v), nil
}
