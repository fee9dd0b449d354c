package dataset

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gota/gota/series"
)

// TargetsOfGroup returns the values of target for every row whose protected
// value equals group, in row order. An absent group yields an empty series.
func (d *Dataset) TargetsOfGroup(target, protected string, group int) (series.Series, error) {
	tcol, pcol, err := d.pair(target, protected)
	if err != nil {
		return series.Series{}, err
	}
	return tcol.Subset(groupRows(pcol, group)), nil
}

// CountClassification counts the rows of group whose target value equals
// accepted. It returns 0 both for an absent group and for a group that never
// takes the value; use LookupClassification to tell these apart.
func (d *Dataset) CountClassification(target, protected string, group int, accepted any) (int, error) {
	n, _, err := d.LookupClassification(target, protected, group, accepted)
	return n, err
}

// LookupClassification is CountClassification that also reports whether
// group occurs in protected at all.
func (d *Dataset) LookupClassification(target, protected string, group int, accepted any) (count int, present bool, err error) {
	tcol, pcol, err := d.pair(target, protected)
	if err != nil {
		return 0, false, err
	}
	rows := groupRows(pcol, group)
	want, ok := valueOf(tcol, accepted)
	if !ok {
		return 0, len(rows) > 0, nil
	}
	for _, i := range rows {
		if matches(tcol.Elem(i), want) {
			count++
		}
	}
	return count, len(rows) > 0, nil
}

// ProbPositive returns the share of non-missing target values equal to 1.
// A column that never takes the value 1 gives 0.
func (d *Dataset) ProbPositive(target string) (float64, error) {
	return d.ProbOutcome(target, 1)
}

// ProbOutcome returns the share of non-missing target values equal to accepted.
func (d *Dataset) ProbOutcome(target string, accepted any) (float64, error) {
	tcol, err := d.column(target)
	if err != nil {
		return 0, err
	}
	want, ok := valueOf(tcol, accepted)
	hits, observed := 0, 0
	for i := 0; i < tcol.Len(); i++ {
		e := tcol.Elem(i)
		if e.IsNA() {
			continue
		}
		observed++
		if ok && matches(e, want) {
			hits++
		}
	}
	if observed == 0 {
		return 0, fmt.Errorf("column %q: %w", target, ErrNoObservations)
	}
	return float64(hits) / float64(observed), nil
}

// GroupSizes counts the members of every group code in protected.
func (d *Dataset) GroupSizes(protected string) (map[int]int, error) {
	if !d.isProtected(protected) {
		return nil, &UnknownColumnError{Column: protected, Role: "protected"}
	}
	pcol := d.data.Col(protected)
	sizes := make(map[int]int)
	for i := 0; i < pcol.Len(); i++ {
		if code, ok := codeAt(pcol, i); ok {
			sizes[code]++
		}
	}
	return sizes, nil
}

// Groups returns the distinct group codes of protected in ascending order.
func (d *Dataset) Groups(protected string) ([]int, error) {
	sizes, err := d.GroupSizes(protected)
	if err != nil {
		return nil, err
	}
	groups := make([]int, 0, len(sizes))
	for code := range sizes {
		groups = append(groups, code)
	}
	slices.Sort(groups)
	return groups, nil
}

// ConditionalProb returns, for every group code observed in protected, the
// probability that a member's target value equals accepted.
func (d *Dataset) ConditionalProb(target, protected string, accepted any) (map[int]float64, error) {
	if !d.isTarget(target) {
		return nil, &UnknownColumnError{Column: target, Role: "target"}
	}
	sizes, err := d.GroupSizes(protected)
	if err != nil {
		return nil, err
	}

	probs := make(map[int]float64, len(sizes))
	for group, members := range sizes {
		if members == 0 {
			return nil, fmt.Errorf("group %d of %q: %w", group, protected, ErrEmptyGroup)
		}
		n, err := d.CountClassification(target, protected, group, accepted)
		if err != nil {
			return nil, err
		}
		probs[group] = float64(n) / float64(members)
	}
	return probs, nil
}

func (d *Dataset) column(name string) (series.Series, error) {
	if !d.hasColumn(name) {
		return series.Series{}, &UnknownColumnError{Column: name, Role: "column"}
	}
	return d.data.Col(name), nil
}

func (d *Dataset) pair(target, protected string) (series.Series, series.Series, error) {
	tcol, err := d.column(target)
	if err != nil {
		return tcol, series.Series{}, err
	}
	pcol, err := d.column(protected)
	return tcol, pcol, err
}

// groupRows returns the row indexes whose code in col equals group.
func groupRows(col series.Series, group int) []int {
	rows := make([]int, 0)
	for i := 0; i < col.Len(); i++ {
		if code, ok := codeAt(col, i); ok && code == group {
			rows = append(rows, i)
		}
	}
	return rows
}

// codeAt reads row i of col as a group code. Missing and non-integral cells are not codes.
func codeAt(col series.Series, i int) (int, bool) {
	e := col.Elem(i)
	if e.IsNA() {
		return 0, false
	}
	switch col.Type() {
	case series.Int:
		code, err := e.Int()
		return code, err == nil
	case series.Float:
		if f := e.Float(); f == math.Trunc(f) {
			return int(f), true
		}
	}
	return 0, false
}

// valueOf converts v to an element of col's type so comparisons follow the
// column's semantics. It reports false when the conversion would change a
// numeric v, e.g. 1.5 on an Int column; such a value matches no cell.
func valueOf(col series.Series, v any) (series.Element, bool) {
	e := series.New(v, col.Type(), "").Elem(0)
	if e.IsNA() {
		return e, false
	}
	if f, numeric := asFloat(v); numeric && e.Float() != f {
		return e, false
	}
	return e, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func matches(e, want series.Element) bool {
	return !e.IsNA() && !want.IsNA() && e.Eq(want)
}
