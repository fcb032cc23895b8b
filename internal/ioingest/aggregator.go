package ioingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"

	"github.com/cjnoack/skinblast/pkg/blast"
	"github.com/cjnoack/skinblast/pkg/config"
	"github.com/cjnoack/skinblast/pkg/skinblast"
)

// aggregator implements the Aggregator interface.
type aggregator struct {
	cfg *config.Config
}

// New creates a new Aggregator.
func New(cfg *config.Config) skinblast.Aggregator {
	return &aggregator{cfg: cfg}
}

// Aggregate discovers result files, parses them concurrently, and
// concatenates the rows in sorted path order. File order never changes the
// output: each file parses independently and the reduce step follows the
// sorted path list, so the same file set always yields the same table.
func (a *aggregator) Aggregate(ctx context.Context) ([]blast.Hit, error) {
	startTime := time.Now()

	paths, err := a.discover()
	if err != nil {
		return nil, err
	}

	slog.Info("Parsing BLAST result files",
		"dir", a.cfg.Ingest.ResultsDir,
		"files", len(paths),
	)

	perFile, err := a.parseAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	var res []blast.Hit
	for _, hits := range perFile {
		res = append(res, hits...)
	}

	slog.Info("Aggregated BLAST hits",
		"files", len(paths),
		"hits", humanize.Comma(int64(len(res))),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)

	return res, nil
}

// discover lists result files in the configured directory, non-recursively,
// matching the configured pattern. Paths come back sorted.
func (a *aggregator) discover() ([]string, error) {
	dir := a.cfg.Ingest.ResultsDir
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ResultsDirError(dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(a.cfg.Ingest.FilePattern, entry.Name())
		if err != nil {
			return nil, ResultsDirError(dir, err)
		}
		if ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, NoResultFilesError(dir, a.cfg.Ingest.FilePattern)
	}
	return paths, nil
}

// parseAll parses files concurrently, bounded by JobsNumber. Results land
// in a slice indexed by sorted-path position, so concurrency cannot
// perturb row order.
func (a *aggregator) parseAll(
	ctx context.Context,
	paths []string,
) ([][]blast.Hit, error) {
	perFile := make([][]blast.Hit, len(paths))
	bar := newProgressBar(len(paths), "Parsing results ")
	defer bar.Finish()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.JobsNumber)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			hits, err := parseFile(path)
			if err != nil {
				return AggregationError(path, err)
			}
			perFile[i] = hits
			bar.Increment()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return perFile, nil
}

// newProgressBar creates a new progress bar with consistent settings.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
