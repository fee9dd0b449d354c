package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShorthillsAI/fairness-measures-code/pkg/dataset"
)

func newColumnsCmd(a *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the protected and target columns with their group sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("data") {
				a.cfg.Data = data
			}
			if a.cfg.Data == "" {
				return errNoData
			}
			ds, err := dataset.Open(a.cfg.Data, dataset.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, col := range ds.ProtectedCols() {
				sizes, err := ds.GroupSizes(col)
				if err != nil {
					return err
				}
				groups, err := ds.Groups(col)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "protected %s:", col)
				for _, g := range groups {
					fmt.Fprintf(out, " %d(n=%d)", g, sizes[g])
				}
				fmt.Fprintln(out)
			}
			for _, col := range ds.TargetCols() {
				p, err := ds.ProbPositive(col)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "target %s: P(=1)=%.4f\n", col, p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "delimited input file with a header row")
	return cmd
}
