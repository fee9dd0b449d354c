package fairness

import (
	"errors"
	"fmt"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/dataset"
)

// ErrGroupAbsent is returned when a requested group code never occurs in a protected column.
var ErrGroupAbsent = errors.New("fairness: group not present")

// Options selects the outcome and the two groups compared.
type Options struct {
	Accepted       int `yaml:"accepted" json:"accepted"`
	FavoredGroup   int `yaml:"favored_group" json:"favored_group"`
	ProtectedGroup int `yaml:"protected_group" json:"protected_group"`
}

// DefaultOptions compares group 0 (favored) against group 1 (protected) on outcome 1.
func DefaultOptions() Options {
	return Options{Accepted: 1, FavoredGroup: 0, ProtectedGroup: 1}
}

// Result holds every measure for one (target, protected) pair. A measure that
// could not be computed is nil and its reason is listed in Notes. A pair whose
// column lacks one of the compared groups is Skipped and carries no measures.
type Result struct {
	Target        string          `yaml:"target" json:"target"`
	Protected     string          `yaml:"protected" json:"protected"`
	Conditional   map[int]float64 `yaml:"conditional" json:"conditional"`
	Overall       float64         `yaml:"overall" json:"overall"`
	FavoredRate   float64         `yaml:"favored_rate" json:"favored_rate"`
	ProtectedRate float64         `yaml:"protected_rate" json:"protected_rate"`

	MeanDifference float64  `yaml:"mean_difference" json:"mean_difference"`
	ImpactRatio    *float64 `yaml:"impact_ratio" json:"impact_ratio"`
	EliftRatio     *float64 `yaml:"elift_ratio" json:"elift_ratio"`
	OddsRatio      *float64 `yaml:"odds_ratio" json:"odds_ratio"`

	Skipped bool     `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Notes   []string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Evaluate computes every measure for every target and protected column of ds.
// Pairs missing a compared group are returned as Skipped results.
func Evaluate(ds *dataset.Dataset, opts Options) ([]Result, error) {
	var results []Result
	for _, target := range ds.TargetCols() {
		for _, protected := range ds.ProtectedCols() {
			r, err := EvaluatePair(ds, target, protected, opts)
			if errors.Is(err, ErrGroupAbsent) {
				r.Skipped = true
				r.Notes = append(r.Notes, err.Error())
			} else if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
	}
	return results, nil
}

// EvaluatePair computes every measure for one target and protected column.
func EvaluatePair(ds *dataset.Dataset, target, protected string, opts Options) (Result, error) {
	r := Result{Target: target, Protected: protected}

	for _, group := range []int{opts.FavoredGroup, opts.ProtectedGroup} {
		_, present, err := ds.LookupClassification(target, protected, group, opts.Accepted)
		if err != nil {
			return r, err
		}
		if !present {
			return r, fmt.Errorf("%s/%s group %d: %w", target, protected, group, ErrGroupAbsent)
		}
	}

	cond, err := ds.ConditionalProb(target, protected, opts.Accepted)
	if err != nil {
		return r, err
	}
	r.Conditional = cond
	r.FavoredRate = cond[opts.FavoredGroup]
	r.ProtectedRate = cond[opts.ProtectedGroup]

	if opts.Accepted == 1 {
		r.Overall, err = ds.ProbPositive(target)
	} else {
		r.Overall, err = ds.ProbOutcome(target, opts.Accepted)
	}
	if err != nil {
		return r, err
	}

	r.MeanDifference = MeanDifference(r.FavoredRate, r.ProtectedRate)
	r.ImpactRatio = r.keep(ImpactRatio(r.FavoredRate, r.ProtectedRate))
	r.EliftRatio = r.keep(EliftRatio(r.Overall, r.ProtectedRate))
	r.OddsRatio = r.keep(OddsRatio(r.FavoredRate, r.ProtectedRate))
	return r, nil
}

func (r *Result) keep(v float64, err error) *float64 {
	if err != nil {
		r.Notes = append(r.Notes, err.Error())
		return nil
	}
	return &v
}
