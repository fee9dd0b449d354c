package data

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingValues are the cell spellings read as missing.
var MissingValues = []string{"", "NA", "NaN", "<nil>"}

// Delimiters are the separators tried when sniffing a header line, in tie-break order.
var Delimiters = []rune{',', ';', '\t', '|'}

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("data: input has no header row")

// ReadTable reads a delimited text file with a header row into a DataFrame.
// The column separator is detected from the header line.
func ReadTable(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer file.Close()

	df, err := ReadTableFrom(file)
	if err != nil {
		return df, fmt.Errorf("read %s: %w", path, err)
	}
	return df, nil
}

// ReadTableFrom reads delimited text with a header row from r.
func ReadTableFrom(r io.Reader) (dataframe.DataFrame, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return dataframe.DataFrame{}, err
	}
	if strings.TrimSpace(header) == "" {
		return dataframe.DataFrame{}, ErrEmptyInput
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	delim := SniffDelimiter(header)
	if len(bytes.TrimSpace(rest)) == 0 {
		return emptyTable(header, delim)
	}

	df := dataframe.ReadCSV(
		io.MultiReader(strings.NewReader(header), bytes.NewReader(rest)),
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.NaNValues(MissingValues),
	)
	if df.Err != nil {
		return df, df.Err
	}
	return df, nil
}

// emptyTable builds a zero-row table with the header's columns. The columns
// are typed String since there are no values to detect a type from.
func emptyTable(header string, delim rune) (dataframe.DataFrame, error) {
	r := csv.NewReader(strings.NewReader(header))
	r.Comma = delim
	names, err := r.Read()
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = series.New([]string{}, series.String, name)
	}
	df := dataframe.New(cols...)
	return df, df.Err
}

// SniffDelimiter picks the candidate separator occurring most often outside
// quotes in line. A line with none of them is a single column and gets ','.
func SniffDelimiter(line string) rune {
	counts := make(map[rune]int, len(Delimiters))
	quoted := false
	for _, c := range line {
		if c == '"' {
			quoted = !quoted
			continue
		}
		if !quoted {
			counts[c]++
		}
	}

	best, bestCount := Delimiters[0], 0
	for _, d := range Delimiters {
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}
