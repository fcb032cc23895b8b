// Package iometa implements the MetadataLoader interface for tab-delimited
// SRA run tables. This is an impure I/O package.
package iometa

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/cjnoack/skinblast/pkg/config"
	"github.com/cjnoack/skinblast/pkg/sample"
	"github.com/cjnoack/skinblast/pkg/skinblast"
)

// loader implements the MetadataLoader interface.
type loader struct {
	cfg *config.Config
}

// New creates a new MetadataLoader.
func New(cfg *config.Config) skinblast.MetadataLoader {
	return &loader{cfg: cfg}
}

// Load reads the metadata file: one header row, then one row per sample.
// All values stay as text; no categorical typing happens here. The
// configured run column must be present in the header.
func (l *loader) Load() (*sample.Table, error) {
	path := l.cfg.Metadata.Path
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	// SRA run table exports are not strict about quoting.
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, HeaderError(path)
	}
	if err != nil {
		return nil, ReadError(path, err)
	}

	res := &sample.Table{Columns: header}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		// Short rows pad out so column lookups stay in range.
		for len(row) < len(header) {
			row = append(row, "")
		}
		res.Rows = append(res.Rows, row)
	}

	if res.ColumnIndex(l.cfg.Metadata.RunColumn) < 0 {
		return nil, RunColumnError(path, l.cfg.Metadata.RunColumn, header)
	}

	slog.Info("Loaded sample metadata",
		"file", path,
		"samples", humanize.Comma(int64(res.Len())),
		"columns", len(res.Columns),
	)

	return res, nil
}
