package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func hiringTable() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{0, 0, 1, 1, 1}, series.Int, "protected_x"),
		series.New([]int{0, 1, 1, 0, 1}, series.Int, "target_y"),
		series.New([]string{"a", "b", "c", "d", "e"}, series.String, "name"),
	)
}

func hiring(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(FromTable{Table: hiringTable()}, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return ds
}

func TestNewClassifiesColumns(t *testing.T) {
	ds := hiring(t)
	assert.Equal(t, []string{"protected_x"}, ds.ProtectedCols())
	assert.Equal(t, []string{"target_y"}, ds.TargetCols())
	assert.Equal(t, 5, ds.Rows())
	assert.Equal(t, []string{"protected_x", "target_y", "name"}, ds.Data().Names())
}

func TestNewKeepsColumnOrder(t *testing.T) {
	df := dataframe.New(
		series.New([]int{1}, series.Int, "target_b"),
		series.New([]int{0}, series.Int, "protected_z"),
		series.New([]int{1}, series.Int, "target_a"),
		series.New([]int{1}, series.Int, "protected_a"),
	)
	ds, err := New(FromTable{Table: df})
	require.NoError(t, err)
	assert.Equal(t, []string{"protected_z", "protected_a"}, ds.ProtectedCols())
	assert.Equal(t, []string{"target_b", "target_a"}, ds.TargetCols())
}

func TestAccessorsReturnCopies(t *testing.T) {
	ds := hiring(t)
	cols := ds.ProtectedCols()
	cols[0] = "changed"
	assert.Equal(t, []string{"protected_x"}, ds.ProtectedCols())
}

func TestNewSchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		table  dataframe.DataFrame
		prefix string
	}{
		{
			name:   "no protected column",
			table:  dataframe.New(series.New([]int{0, 1}, series.Int, "target_y")),
			prefix: ProtectedPrefix,
		},
		{
			name:   "no target column",
			table:  dataframe.New(series.New([]int{0, 1}, series.Int, "protected_x")),
			prefix: TargetPrefix,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(FromTable{Table: tt.table})
			assert.Nil(t, ds)
			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "got %v", err)
			assert.Equal(t, tt.prefix, schemaErr.Prefix)
		})
	}
}

func TestNewEncodingErrors(t *testing.T) {
	tests := []struct {
		name  string
		col   series.Series
		value string
	}{
		{"fractional code", series.New([]float64{0, 1.5, 1}, series.Float, "protected_x"), "1.500000"},
		{"integral floats", series.New([]float64{0, 1}, series.Float, "protected_x"), "0.000000"},
		{"text codes", series.New([]string{"m", "f"}, series.String, "protected_x"), "m"},
		{"missing code", series.New([]string{"0", "NaN", "1"}, series.Int, "protected_x"), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df := dataframe.New(tt.col, series.New(make([]int, tt.col.Len()), series.Int, "target_y"))
			ds, err := New(FromTable{Table: df})
			assert.Nil(t, ds)
			var encErr *EncodingError
			require.True(t, errors.As(err, &encErr), "got %v", err)
			assert.Equal(t, "protected_x", encErr.Column)
			assert.Equal(t, tt.value, encErr.Value)
		})
	}
}

func TestNewFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiring.csv")
	content := "id;protected_sex;target_hired\n1;0;1\n2;1;0\n3;1;1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"protected_sex"}, ds.ProtectedCols())
	assert.Equal(t, []string{"target_hired"}, ds.TargetCols())
	assert.Equal(t, 3, ds.Rows())
}

func TestNewFromMissingPath(t *testing.T) {
	_, err := New(FromPath(filepath.Join(t.TempDir(), "nope.csv")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFromBrokenTable(t *testing.T) {
	broken := dataframe.DataFrame{Err: errors.New("boom")}
	_, err := New(FromTable{Table: broken})
	assert.EqualError(t, err, "load <table>: boom")
}

func TestNewFromHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("protected_sex,target_hired\n"), 0o644))

	ds, err := Open(path)
	require.NoError(t, err)
	assert.Zero(t, ds.Rows())
	assert.Equal(t, []string{"protected_sex"}, ds.ProtectedCols())

	probs, err := ds.ConditionalProb("target_hired", "protected_sex", 1)
	require.NoError(t, err)
	assert.Empty(t, probs)

	_, err = ds.ProbPositive("target_hired")
	assert.ErrorIs(t, err, ErrNoObservations)
}
