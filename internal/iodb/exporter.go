// Package iodb exports the joined table to a SQLite file for ad-hoc SQL
// querying. This is an impure I/O package built on database/sql with the
// modernc.org/sqlite driver.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	_ "modernc.org/sqlite"

	"github.com/cjnoack/skinblast/pkg/config"
	"github.com/cjnoack/skinblast/pkg/relate"
	"github.com/cjnoack/skinblast/pkg/skinblast"
)

// exporter implements the Exporter interface.
type exporter struct {
	cfg *config.Config
}

// New creates a new Exporter.
func New(cfg *config.Config) skinblast.Exporter {
	return &exporter{cfg: cfg}
}

// Export writes the joined table to a SQLite database at path:
// a samples table mirroring the metadata columns, a hits table with the
// normalized alignment records, and a joined view reproducing the
// left-join. Hit IDs are deterministic UUID v5 values derived from the
// record content, so re-exporting unchanged input yields identical rows.
func (e *exporter) Export(
	ctx context.Context,
	t *relate.Table,
	path string,
) error {
	startTime := time.Now()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return OpenError(path, err)
	}
	defer db.Close()

	if err = e.createSchema(ctx, db, t); err != nil {
		return err
	}
	if err = e.insertRows(ctx, db, t); err != nil {
		return err
	}

	slog.Info("Exported joined table",
		"path", path,
		"rows", humanize.Comma(int64(t.Len())),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)

	return nil
}

func (e *exporter) createSchema(
	ctx context.Context,
	db *sql.DB,
	t *relate.Table,
) error {
	metaCols := make([]string, len(t.MetaColumns))
	for i, name := range t.MetaColumns {
		metaCols[i] = quoteIdent(name) + " TEXT"
	}

	stmts := []string{
		`DROP VIEW IF EXISTS joined`,
		`DROP TABLE IF EXISTS hits`,
		`DROP TABLE IF EXISTS samples`,
		fmt.Sprintf(
			"CREATE TABLE samples (%s, PRIMARY KEY (%s))",
			strings.Join(metaCols, ", "),
			quoteIdent(t.RunColumn),
		),
		`CREATE TABLE hits (
  id TEXT PRIMARY KEY,
  sample_key TEXT NOT NULL,
  seq_ordinal TEXT NOT NULL,
  sscinames TEXT NOT NULL,
  sseqid TEXT NOT NULL,
  pident REAL NOT NULL,
  length INTEGER NOT NULL,
  mismatch INTEGER NOT NULL,
  gapopen INTEGER NOT NULL,
  qstart INTEGER NOT NULL,
  qend INTEGER NOT NULL,
  sstart INTEGER NOT NULL,
  send INTEGER NOT NULL,
  evalue REAL NOT NULL,
  bitscore REAL NOT NULL
)`,
		`CREATE INDEX idx_hits_sample_key ON hits (sample_key)`,
		fmt.Sprintf(
			`CREATE VIEW joined AS
SELECT s.*, h.id, h.seq_ordinal, h.sscinames, h.sseqid, h.pident,
       h.length, h.mismatch, h.gapopen, h.qstart, h.qend, h.sstart,
       h.send, h.evalue, h.bitscore
FROM samples s LEFT JOIN hits h ON h.sample_key = s.%s`,
			quoteIdent(t.RunColumn),
		),
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return SchemaError(stmt, err)
		}
	}
	return nil
}

func (e *exporter) insertRows(
	ctx context.Context,
	db *sql.DB,
	t *relate.Table,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return InsertError(err)
	}
	defer tx.Rollback()

	placeholders := make([]string, len(t.MetaColumns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	sampleStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT OR IGNORE INTO samples VALUES (%s)",
		strings.Join(placeholders, ", "),
	))
	if err != nil {
		return InsertError(err)
	}
	defer sampleStmt.Close()

	hitStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hits VALUES
(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return InsertError(err)
	}
	defer hitStmt.Close()

	for i := range t.Rows {
		row := t.Rows[i]

		args := make([]any, len(row.Meta))
		for j, v := range row.Meta {
			args[j] = v
		}
		if _, err = sampleStmt.ExecContext(ctx, args...); err != nil {
			return InsertError(err)
		}

		hit := row.Hit
		if hit == nil {
			continue
		}
		id := gnuuid.New(hitSeed(row)).String()
		_, err = hitStmt.ExecContext(ctx,
			id, hit.SampleKey, hit.SeqOrdinal, hit.SubjectSciName,
			hit.SubjectSeqID, hit.PercentIdentity, hit.AlignLength,
			hit.Mismatches, hit.GapOpens, hit.QueryStart, hit.QueryEnd,
			hit.SubjectStart, hit.SubjectEnd, hit.EValue, hit.BitScore,
		)
		if err != nil {
			return InsertError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return InsertError(err)
	}
	return nil
}

// hitSeed builds the deterministic UUID v5 seed for one hit. A query can
// match the same subject more than once, so the alignment coordinates are
// part of the seed.
func hitSeed(row relate.Row) string {
	h := row.Hit
	return fmt.Sprintf("%s|%s|%d|%d",
		h.QuerySeqID(), h.SubjectSeqID, h.QueryStart, h.SubjectStart)
}

// quoteIdent quotes a dynamic identifier for SQLite DDL.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
