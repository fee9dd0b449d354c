package dataset

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/series"
	"go.uber.org/zap"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/stats"
)

// NormalizeColumn rewrites every observed value x of the column as
// (x - mean) / (max - min). Missing cells stay missing. A column can be
// normalized once per Dataset; the column is unchanged when an error is returned.
func (d *Dataset) NormalizeColumn(name string) error {
	if !d.hasColumn(name) {
		return &UnknownColumnError{Column: name, Role: "column"}
	}
	if d.isProtected(name) {
		return fmt.Errorf("normalize %q: %w", name, ErrProtectedColumn)
	}
	if d.normalized[name] {
		return fmt.Errorf("normalize %q: %w", name, ErrAlreadyNormalized)
	}

	col := d.data.Col(name)
	if t := col.Type(); t != series.Int && t != series.Float {
		return fmt.Errorf("normalize %q (%s): %w", name, t, ErrNotNumeric)
	}

	missing := col.IsNaN()
	scaled, p, err := stats.MeanRangeScale(col.Float(), missing)
	switch {
	case errors.Is(err, stats.ErrZeroRange):
		return &DegenerateColumnError{Column: name, Value: p.Min}
	case errors.Is(err, stats.ErrNoValues):
		return fmt.Errorf("normalize %q: %w", name, ErrNoObservations)
	case err != nil:
		return err
	}

	values := make([]interface{}, len(scaled))
	for i, v := range scaled {
		if !missing[i] {
			values[i] = v
		}
	}
	df := d.data.Mutate(series.New(values, series.Float, name))
	if df.Err != nil {
		return fmt.Errorf("normalize %q: %w", name, df.Err)
	}

	d.data = df
	d.normalized[name] = true
	d.logger.Debug("column normalized",
		zap.String("column", name),
		zap.Float64("mean", p.Mean),
		zap.Float64("min", p.Min),
		zap.Float64("max", p.Max))
	return nil
}
