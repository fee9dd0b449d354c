package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoObservations is returned when a column has no non-missing values.
	ErrNoObservations = errors.New("dataset: column has no observed values")
	// ErrEmptyGroup is returned when a conditional probability would divide by a zero-member group.
	ErrEmptyGroup = errors.New("dataset: group has no members")
	// ErrNotNumeric is returned when a numeric operation targets a non-numeric column.
	ErrNotNumeric = errors.New("dataset: column is not numeric")
	// ErrProtectedColumn is returned when normalization targets a protected column.
	ErrProtectedColumn = errors.New("dataset: protected columns hold category codes and cannot be normalized")
	// ErrAlreadyNormalized is returned when a column is normalized a second time.
	ErrAlreadyNormalized = errors.New("dataset: column already normalized")
)

// SchemaError reports that no column carries the given name prefix.
type SchemaError struct {
	Prefix string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset: no column with prefix %q; need at least one protected and one target column", e.Prefix)
}

// EncodingError reports a protected column holding something other than integer codes.
type EncodingError struct {
	Column string
	Value  string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("dataset: protected column %q holds non-integer value %q; protection status must be integer codes", e.Column, e.Value)
}

// UnknownColumnError reports a query naming a column that is not available in Role.
type UnknownColumnError struct {
	Column string
	Role   string // "protected", "target" or "column"
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("dataset: unknown %s column %q", e.Role, e.Column)
}

// DegenerateColumnError reports a column whose observed values are all equal.
type DegenerateColumnError struct {
	Column string
	Value  float64
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("dataset: column %q is constant (%g); range is zero", e.Column, e.Value)
}
