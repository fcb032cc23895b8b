// Package skinblast defines the contracts between pipeline stages.
// Implementations live in internal/io* packages.
package skinblast

import (
	"context"

	"github.com/cjnoack/skinblast/pkg/blast"
	"github.com/cjnoack/skinblast/pkg/relate"
	"github.com/cjnoack/skinblast/pkg/sample"
)

// Aggregator discovers BLAST result files, parses each one, and
// concatenates the rows into one deterministic table.
// Any file failure aborts the whole aggregation - a partially-ingested
// result set is worse than no result set.
type Aggregator interface {
	// Aggregate parses every result file found under the configured
	// directory, in sorted path order.
	Aggregate(ctx context.Context) ([]blast.Hit, error)
}

// MetadataLoader reads the tab-delimited sample metadata file.
type MetadataLoader interface {
	// Load reads the metadata table, verifying that the header row and
	// the configured run column are present.
	Load() (*sample.Table, error)
}

// Exporter persists the joined table outside the process.
type Exporter interface {
	// Export writes the joined table to the given destination path.
	Export(ctx context.Context, t *relate.Table, path string) error
}

// Reporter renders summary views of the joined table.
type Reporter interface {
	// Report writes ranked taxa tables and numeric distribution
	// summaries for the joined table.
	Report(ctx context.Context, t *relate.Table) error
}
