// Package dataset holds a validated table of protected attributes and
// classification targets and computes the group-conditional statistics
// fairness measures are built from.
//
// A Dataset is not safe for concurrent use while NormalizeColumn runs.
package dataset

import (
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Dataset is a table whose protected and target columns have been classified
// and validated.
type Dataset struct {
	data       dataframe.DataFrame
	schema     Schema
	normalized map[string]bool
	logger     *zap.Logger
}

// Option configures a Dataset.
type Option func(*Dataset)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dataset) {
		if l != nil {
			d.logger = l
		}
	}
}

// New loads src, classifies its columns and validates the protected ones.
// No Dataset is returned unless every check passes.
func New(src Source, opts ...Option) (*Dataset, error) {
	d := &Dataset{
		normalized: make(map[string]bool),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	df, err := src.load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}

	schema, err := Classify(df.Names())
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(df); err != nil {
		return nil, err
	}

	d.data = df
	d.schema = schema
	d.logger.Debug("dataset classified",
		zap.Stringer("source", src),
		zap.Int("rows", df.Nrow()),
		zap.Strings("protected", schema.Protected),
		zap.Strings("targets", schema.Targets))
	return d, nil
}

// Open is New(FromPath(path), opts...).
func Open(path string, opts ...Option) (*Dataset, error) {
	return New(FromPath(path), opts...)
}

// Data returns the underlying table.
func (d *Dataset) Data() dataframe.DataFrame { return d.data }

// ProtectedCols returns the protected attribute column names in table order.
func (d *Dataset) ProtectedCols() []string { return slices.Clone(d.schema.Protected) }

// TargetCols returns the target column names in table order.
func (d *Dataset) TargetCols() []string { return slices.Clone(d.schema.Targets) }

// Rows returns the number of rows.
func (d *Dataset) Rows() int { return d.data.Nrow() }

func (d *Dataset) isProtected(name string) bool { return slices.Contains(d.schema.Protected, name) }

func (d *Dataset) isTarget(name string) bool { return slices.Contains(d.schema.Targets, name) }

func (d *Dataset) hasColumn(name string) bool { return slices.Contains(d.data.Names(), name) }
