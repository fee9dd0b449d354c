package dataset

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/data"
)

// Source is where a Dataset's table comes from. It is implemented only by
// FromPath and FromTable.
type Source interface {
	load() (dataframe.DataFrame, error)
	String() string
}

// FromPath reads a delimited text file with a header row.
type FromPath string

func (p FromPath) load() (dataframe.DataFrame, error) { return data.ReadTable(string(p)) }

func (p FromPath) String() string { return string(p) }

// FromTable uses an already materialized table.
type FromTable struct {
	Table dataframe.DataFrame
}

func (t FromTable) load() (dataframe.DataFrame, error) { return t.Table, t.Table.Err }

func (t FromTable) String() string { return "<table>" }
