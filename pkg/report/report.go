// Package report renders fairness results for people and for other tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/fairness"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a format other than text, json or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var columns = []string{"TARGET", "PROTECTED", "P(FAV)", "P(PROT)", "OVERALL", "MEAN DIFF", "IMPACT", "ELIFT", "ODDS"}

// Write renders results to w in the given format.
func Write(w io.Writer, results []fairness.Result, format string) error {
	switch format {
	case FormatText, "":
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, results []fairness.Result) error {
	width := make([]int, len(columns))
	rows := make([][]string, 0, len(results))
	for i, c := range columns {
		width[i] = len(c)
	}
	for _, r := range results {
		row := []string{
			r.Target,
			r.Protected,
			number(r.FavoredRate),
			number(r.ProtectedRate),
			number(r.Overall),
			number(r.MeanDifference),
			ratio(r.ImpactRatio),
			ratio(r.EliftRatio),
			ratio(r.OddsRatio),
		}
		if r.Skipped {
			for i := 2; i < len(row); i++ {
				row[i] = "skipped"
			}
		}
		for i, cell := range row {
			width[i] = max(width[i], len(cell))
		}
		rows = append(rows, row)
	}

	if _, err := fmt.Fprintln(w, headerStyle.Render(line(columns, width))); err != nil {
		return err
	}
	for i, row := range rows {
		if _, err := fmt.Fprintln(w, line(row, width)); err != nil {
			return err
		}
		for _, note := range results[i].Notes {
			if _, err := fmt.Fprintln(w, noteStyle.Render("  note: "+note)); err != nil {
				return err
			}
		}
	}
	return nil
}

func line(cells []string, width []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = fmt.Sprintf("%-*s", width[i], c)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func number(v float64) string { return fmt.Sprintf("%.4f", v) }

func ratio(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return number(*v)
}
