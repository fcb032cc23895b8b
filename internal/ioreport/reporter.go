// Package ioreport renders summary views and tabular dumps of the joined
// table. This is an impure package that writes to files or stdout.
package ioreport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"

	"github.com/cjnoack/skinblast/pkg/config"
	"github.com/cjnoack/skinblast/pkg/parserpool"
	"github.com/cjnoack/skinblast/pkg/relate"
	"github.com/cjnoack/skinblast/pkg/skinblast"
	"github.com/cjnoack/skinblast/pkg/views"
)

// reportFields are the numeric hit fields summarized per group in the
// default report. Mismatch and alignment length are the two measures the
// skin community comparison cares about.
var reportFields = []views.Field{
	views.FieldMismatches,
	views.FieldAlignLength,
}

// reporter implements the Reporter interface.
type reporter struct {
	cfg *config.Config
	out io.Writer
}

// New creates a new Reporter writing to out.
func New(cfg *config.Config, out io.Writer) skinblast.Reporter {
	return &reporter{cfg: cfg, out: out}
}

// Report writes one ranked-taxa table per cohort value, then per-group
// distribution summaries of the numeric report fields.
func (r *reporter) Report(ctx context.Context, t *relate.Table) error {
	startTime := time.Now()

	var canon func(string) string
	if r.cfg.Report.Canonical {
		pool := parserpool.NewPool(r.cfg.JobsNumber)
		defer pool.Close()
		canon = pool.Canonical
		slog.Info("Canonicalizing scientific names before grouping")
	}

	cohorts, err := views.CohortValues(t, r.cfg.Report.CohortColumn)
	if err != nil {
		return err
	}

	for _, cohort := range cohorts {
		if err := ctx.Err(); err != nil {
			return err
		}
		sub, err := views.Filter(
			t, map[string]string{r.cfg.Report.CohortColumn: cohort},
		)
		if err != nil {
			return err
		}
		top := views.TopTaxa(sub, r.cfg.Report.TopN, canon)
		if err := r.writeTopTaxa(cohort, sub, top); err != nil {
			return err
		}
	}

	for _, field := range reportFields {
		summaries, err := views.Distribution(
			t, field, r.cfg.Report.GroupColumn,
		)
		if err != nil {
			return err
		}
		if err := r.writeDistribution(field, summaries); err != nil {
			return err
		}
	}

	slog.Info("Report finished",
		"rows", humanize.Comma(int64(t.Len())),
		"matched", humanize.Comma(int64(t.Matched())),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)

	return nil
}

func (r *reporter) writeTopTaxa(
	cohort string,
	sub *relate.Table,
	top []views.TaxonCount,
) error {
	header := fmt.Sprintf(
		"Top %d taxa for %s = %s (%s hits)",
		r.cfg.Report.TopN,
		r.cfg.Report.CohortColumn,
		cohort,
		humanize.Comma(int64(sub.Matched())),
	)
	if err := r.writeSection(header); err != nil {
		return err
	}

	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTAXON\tHITS")
	for i, tc := range top {
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, tc.Name, tc.Count)
	}
	if err := w.Flush(); err != nil {
		return WriteError(err)
	}
	return nil
}

func (r *reporter) writeDistribution(
	field views.Field,
	summaries []views.Summary,
) error {
	header := fmt.Sprintf(
		"Distribution of %s per %s",
		field, r.cfg.Report.GroupColumn,
	)
	if err := r.writeSection(header); err != nil {
		return err
	}

	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tN\tMEAN\tMEDIAN\tSD\tMIN\tMAX")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%g\t%g\n",
			s.Group, s.N, s.Mean, s.Median, s.StdDev, s.Min, s.Max)
	}
	if err := w.Flush(); err != nil {
		return WriteError(err)
	}
	return nil
}

func (r *reporter) writeSection(header string) error {
	_, err := fmt.Fprintf(
		r.out, "\n%s\n%s\n", header, strings.Repeat("─", len([]rune(header))),
	)
	if err != nil {
		return WriteError(err)
	}
	return nil
}
