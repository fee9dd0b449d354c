// Package fairness computes group fairness measures from the conditional
// classification probabilities of a dataset.
package fairness

import (
	"errors"
	"fmt"
)

// ErrUndefined is returned when a measure's denominator is zero.
var ErrUndefined = errors.New("fairness: measure undefined for these rates")

// MeanDifference is p(favored) - p(protected), the statistical parity difference.
func MeanDifference(favored, protected float64) float64 {
	return favored - protected
}

// ImpactRatio is p(protected) / p(favored), the disparate impact.
func ImpactRatio(favored, protected float64) (float64, error) {
	if favored == 0 {
		return 0, fmt.Errorf("impact ratio: favored rate is 0: %w", ErrUndefined)
	}
	return protected / favored, nil
}

// EliftRatio is p(protected) / p(overall).
func EliftRatio(overall, protected float64) (float64, error) {
	if overall == 0 {
		return 0, fmt.Errorf("elift ratio: overall rate is 0: %w", ErrUndefined)
	}
	return protected / overall, nil
}

// OddsRatio compares the odds of the favored group with those of the protected group.
func OddsRatio(favored, protected float64) (float64, error) {
	den := protected * (1 - favored)
	if den == 0 {
		return 0, fmt.Errorf("odds ratio: %w", ErrUndefined)
	}
	return favored * (1 - protected) / den, nil
}
