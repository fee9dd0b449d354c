package dataset

import (
	"errors"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/stats"
)

func withIncome(t *testing.T, income series.Series) *Dataset {
	t.Helper()
	df := dataframe.New(
		series.New([]int{0, 1, 1, 0}, series.Int, "protected_x"),
		series.New([]int{1, 0, 1, 1}, series.Int, "target_y"),
		income,
	)
	ds, err := New(FromTable{Table: df})
	require.NoError(t, err)
	return ds
}

func observed(col series.Series) []float64 {
	return stats.Observed(col.Float(), col.IsNaN())
}

func TestNormalizeColumn(t *testing.T) {
	ds := withIncome(t, series.New([]string{"10", "NaN", "30", "50"}, series.Float, "income"))
	require.NoError(t, ds.NormalizeColumn("income"))

	col := ds.Data().Col("income")
	assert.Equal(t, series.Float, col.Type())
	assert.True(t, col.Elem(1).IsNA())

	vals := observed(col)
	require.Len(t, vals, 3)
	assert.InDelta(t, -0.5, vals[0], 1e-12)
	assert.InDelta(t, 0.0, vals[1], 1e-12)
	assert.InDelta(t, 0.5, vals[2], 1e-12)

	min, max := stats.MinMax(vals)
	assert.InDelta(t, 0.0, stats.Mean(vals), 1e-12)
	assert.InDelta(t, 1.0, max-min, 1e-12)
}

func TestNormalizeIntColumn(t *testing.T) {
	ds := withIncome(t, series.New([]int{3, 9, 1, 7}, series.Int, "income"))
	require.NoError(t, ds.NormalizeColumn("income"))

	vals := observed(ds.Data().Col("income"))
	min, max := stats.MinMax(vals)
	assert.InDelta(t, 0.0, stats.Mean(vals), 1e-12)
	assert.InDelta(t, 1.0, max-min, 1e-12)
}

func TestNormalizeDegenerateColumn(t *testing.T) {
	ds := withIncome(t, series.New([]string{"4", "4", "NaN", "4"}, series.Float, "income"))

	err := ds.NormalizeColumn("income")
	var degenerate *DegenerateColumnError
	require.True(t, errors.As(err, &degenerate), "got %v", err)
	assert.Equal(t, "income", degenerate.Column)
	assert.Equal(t, 4.0, degenerate.Value)

	assert.Equal(t, []float64{4, 4, 4}, observed(ds.Data().Col("income")))
}

func TestNormalizeRejections(t *testing.T) {
	tests := []struct {
		name   string
		income series.Series
		column string
		want   error
	}{
		{"all missing", series.New([]string{"NaN", "NaN", "NaN", "NaN"}, series.Float, "income"), "income", ErrNoObservations},
		{"text column", series.New([]string{"a", "b", "c", "d"}, series.String, "income"), "income", ErrNotNumeric},
		{"protected column", series.New([]int{1, 2, 3, 4}, series.Int, "income"), "protected_x", ErrProtectedColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := withIncome(t, tt.income)
			assert.ErrorIs(t, ds.NormalizeColumn(tt.column), tt.want)
		})
	}
}

func TestNormalizeUnknownColumn(t *testing.T) {
	ds := hiring(t)
	var unknown *UnknownColumnError
	assert.True(t, errors.As(ds.NormalizeColumn("salary"), &unknown))
}

func TestNormalizeTwiceIsRejected(t *testing.T) {
	ds := withIncome(t, series.New([]int{3, 9, 1, 7}, series.Int, "income"))
	require.NoError(t, ds.NormalizeColumn("income"))
	before := observed(ds.Data().Col("income"))

	assert.ErrorIs(t, ds.NormalizeColumn("income"), ErrAlreadyNormalized)
	assert.Equal(t, before, observed(ds.Data().Col("income")))
}
