package stats

import "errors"

// ErrZeroRange is returned when a column has max == min and cannot be range-scaled.
var ErrZeroRange = errors.New("stats: column has zero range")

// ErrNoValues is returned when there is nothing to scale.
var ErrNoValues = errors.New("stats: no observed values")

// RangeParams holds the statistics a mean/range scaling was computed from.
type RangeParams struct {
	Mean float64
	Min  float64
	Max  float64
}

// Range returns max - min.
func (p RangeParams) Range() float64 { return p.Max - p.Min }

// Apply scales a single value.
func (p RangeParams) Apply(v float64) float64 { return (v - p.Mean) / p.Range() }

// FitMeanRange computes mean, min and max over the observed values of x.
// Missing entries (missing[i] == true) are skipped.
func FitMeanRange(x []float64, missing []bool) (RangeParams, error) {
	obs := Observed(x, missing)
	if len(obs) == 0 {
		return RangeParams{}, ErrNoValues
	}
	min, max := MinMax(obs)
	p := RangeParams{Mean: Mean(obs), Min: min, Max: max}
	if max == min {
		return p, ErrZeroRange
	}
	return p, nil
}

// MeanRangeScale rescales every observed value to (x - mean) / (max - min).
// Missing entries are copied through untouched and stay flagged by the caller's mask.
func MeanRangeScale(x []float64, missing []bool) ([]float64, RangeParams, error) {
	p, err := FitMeanRange(x, missing)
	if err != nil {
		return nil, p, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		if missing != nil && missing[i] {
			out[i] = v
			continue
		}
		out[i] = p.Apply(v)
	}
	return out, p, nil
}
