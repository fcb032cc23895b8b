package main

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/cjnoack/skinblast/internal/ioingest"
	"github.com/cjnoack/skinblast/internal/iometa"
	"github.com/cjnoack/skinblast/pkg/relate"
)

// buildJoined runs the shared pipeline: ingest all BLAST result files,
// load the metadata table, and left-join the two anchored on the run
// accession.
func buildJoined(ctx context.Context) (*relate.Table, error) {
	meta, err := iometa.New(cfg).Load()
	if err != nil {
		return nil, err
	}

	hits, err := ioingest.New(cfg).Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	joined, err := relate.LeftJoin(meta, hits, cfg.Metadata.RunColumn)
	if err != nil {
		return nil, err
	}

	slog.Info("Joined BLAST hits with metadata",
		"samples", humanize.Comma(int64(meta.Len())),
		"hits", humanize.Comma(int64(len(hits))),
		"rows", humanize.Comma(int64(joined.Len())),
		"matched", humanize.Comma(int64(joined.Matched())),
	)

	return joined, nil
}
