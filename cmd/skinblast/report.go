package main

import (
	"context"
	"os"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/cjnoack/skinblast/internal/ioreport"
	"github.com/cjnoack/skinblast/pkg/config"
)

// getReportCmd returns the report command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getReportCmd() *cobra.Command {
	var (
		topN         int
		cohortColumn string
		groupColumn  string
		canonical    bool
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize joined BLAST hits per cohort",
		Long: `Run the full pipeline and print summary tables.

For every distinct value of the cohort column (sex_s by default) the
command prints the most frequent taxa with hit counts. It then prints
per-group distribution summaries (n, mean, median, sd, min, max) of the
mismatch count and the alignment length, grouped by the group column
(host_subject_id_s by default).

With --canonical, subject scientific names are normalized with gnparser
before grouping, so strain-level annotations collapse into one taxon.

Examples:
  skinblast report
  skinblast report --top 5 --cohort sex_s
  skinblast report --canonical --group-by host_subject_id_s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if topN > 0 {
				opts = append(opts, config.OptTopN(topN))
			}
			if cohortColumn != "" {
				opts = append(opts, config.OptCohortColumn(cohortColumn))
			}
			if groupColumn != "" {
				opts = append(opts, config.OptGroupColumn(groupColumn))
			}
			if canonical {
				opts = append(opts, config.OptCanonical(true))
			}
			cfg.Update(opts)
			return runReport()
		},
	}

	reportCmd.Flags().IntVarP(&topN, "top", "t", 0,
		"number of taxa per ranked table")
	reportCmd.Flags().StringVar(&cohortColumn, "cohort", "",
		"metadata column whose values partition the taxa tables")
	reportCmd.Flags().StringVar(&groupColumn, "group-by", "",
		"metadata column grouping the numeric distributions")
	reportCmd.Flags().BoolVarP(&canonical, "canonical", "c", false,
		"canonicalize scientific names before grouping")

	return reportCmd
}

func runReport() error {
	ctx := context.Background()

	joined, err := buildJoined(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	rep := ioreport.New(cfg, os.Stdout)
	if err = rep.Report(ctx, joined); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}
