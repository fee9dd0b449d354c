package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/dataset"
	"github.com/ShorthillsAI/fairness-measures-code/pkg/fairness"
	"github.com/ShorthillsAI/fairness-measures-code/pkg/report"
)

var errNoData = errors.New("no input file: set --data, the config data key or FAIRNESS_DATA")

type analyzeFlags struct {
	data           string
	normalize      []string
	accepted       int
	favoredGroup   int
	protectedGroup int
	format         string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute fairness measures for every target and protected column",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.Data = f.data
			}
			if flags.Changed("normalize") {
				cfg.Normalize = f.normalize
			}
			if flags.Changed("accepted") {
				cfg.Accepted = f.accepted
			}
			if flags.Changed("favored") {
				cfg.FavoredGroup = f.favoredGroup
			}
			if flags.Changed("protected-group") {
				cfg.ProtectedGroup = f.protectedGroup
			}
			if flags.Changed("format") {
				cfg.Format = f.format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Data == "" {
				return errNoData
			}

			ds, err := dataset.Open(cfg.Data, dataset.WithLogger(a.logger))
			if err != nil {
				return err
			}
			for _, col := range cfg.Normalize {
				if err := ds.NormalizeColumn(col); err != nil {
					return err
				}
			}

			results, err := fairness.Evaluate(ds, cfg.Options())
			if err != nil {
				return err
			}
			a.logger.Info("analysis complete",
				zap.String("data", cfg.Data),
				zap.Int("rows", ds.Rows()),
				zap.Int("pairs", len(results)))
			return report.Write(cmd.OutOrStdout(), results, cfg.Format)
		},
	}

	cmd.Flags().StringVarP(&f.data, "data", "d", "", "delimited input file with a header row")
	cmd.Flags().StringSliceVar(&f.normalize, "normalize", nil, "columns to rescale to (x-mean)/(max-min) first")
	cmd.Flags().IntVar(&f.accepted, "accepted", 1, "outcome value whose rate is compared")
	cmd.Flags().IntVar(&f.favoredGroup, "favored", 0, "group code of the favored group")
	cmd.Flags().IntVar(&f.protectedGroup, "protected-group", 1, "group code of the protected group")
	cmd.Flags().StringVarP(&f.format, "format", "f", report.FormatText, "output format: text, json or yaml")
	return cmd
}
