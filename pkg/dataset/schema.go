package dataset

import (
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column name prefixes that mark protected attributes and targets.
const (
	ProtectedPrefix = "protected"
	TargetPrefix    = "target"
)

// Schema is the classification of a table's columns.
type Schema struct {
	Protected []string
	Targets   []string
}

// Classify partitions names by prefix, keeping their order.
func Classify(names []string) (Schema, error) {
	var s Schema
	for _, name := range names {
		switch {
		case strings.HasPrefix(name, ProtectedPrefix):
			s.Protected = append(s.Protected, name)
		case strings.HasPrefix(name, TargetPrefix):
			s.Targets = append(s.Targets, name)
		}
	}
	if len(s.Protected) == 0 {
		return s, &SchemaError{Prefix: ProtectedPrefix}
	}
	if len(s.Targets) == 0 {
		return s, &SchemaError{Prefix: TargetPrefix}
	}
	return s, nil
}

// Validate checks that every protected column holds integer codes only.
func (s Schema) Validate(df dataframe.DataFrame) error {
	for _, name := range s.Protected {
		if err := checkCodes(name, df.Col(name)); err != nil {
			return err
		}
	}
	return nil
}

// checkCodes dedups the column's values, then rejects the first one that is
// not an integer code. Float columns are rejected even when every value is integral.
func checkCodes(name string, col series.Series) error {
	distinct := make(map[string]series.Element)
	order := make([]string, 0, 2)
	for i := 0; i < col.Len(); i++ {
		e := col.Elem(i)
		key := e.String()
		if _, ok := distinct[key]; !ok {
			distinct[key] = e
			order = append(order, key)
		}
	}

	for _, key := range order {
		e := distinct[key]
		switch {
		case e.IsNA():
			return &EncodingError{Column: name, Value: key}
		case col.Type() == series.Int:
		case col.Type() != series.Float || e.Float() != math.Trunc(e.Float()):
			return &EncodingError{Column: name, Value: key}
		}
	}
	if col.Type() != series.Int && len(order) > 0 {
		return &EncodingError{Column: name, Value: order[0]}
	}
	return nil
}
