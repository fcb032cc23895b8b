// Package relate joins the sample metadata table with aggregated BLAST hits.
//
// The join is anchored on metadata: every metadata row survives, hits whose
// sample key never occurs in metadata are dropped. This is a deliberate,
// documented policy - the metadata table defines the universe of samples the
// analysis knows about.
package relate

import (
	"github.com/cjnoack/skinblast/pkg/blast"
	"github.com/cjnoack/skinblast/pkg/sample"
)

// Row is one row of the joined table. Hit is nil for metadata rows that
// matched no alignment record.
type Row struct {
	// Meta is the metadata row, in metadata column order.
	Meta []string

	// Hit is the matching alignment record, or nil.
	Hit *blast.Hit
}

// Table is the left join of metadata (driving side) with aggregated hits.
type Table struct {
	// MetaColumns is the metadata header in file order.
	MetaColumns []string

	// RunColumn is the metadata column matched against Hit.SampleKey.
	RunColumn string

	// Rows follow metadata row order; a metadata row with k matching hits
	// contributes k consecutive rows (hits in aggregated order), a row
	// with no match contributes exactly one row with a nil Hit.
	Rows []Row
}

// LeftJoin joins metadata against hits on runColumn = Hit.SampleKey.
// Output row order is deterministic for fixed inputs: metadata order,
// matching hits in their aggregated order. Returns a JoinKeyError when
// runColumn is missing from the metadata header. Unmatched keys on either
// side never fail: unmatched metadata rows get nil hits, unmatched hits
// are excluded.
func LeftJoin(
	meta *sample.Table,
	hits []blast.Hit,
	runColumn string,
) (*Table, error) {
	runIdx := meta.ColumnIndex(runColumn)
	if runIdx < 0 {
		return nil, JoinKeyError(runColumn, meta.Columns)
	}

	// Index hits by sample key, preserving aggregated order per key.
	bySample := make(map[string][]int, len(meta.Rows))
	for i := range hits {
		key := hits[i].SampleKey
		bySample[key] = append(bySample[key], i)
	}

	res := &Table{
		MetaColumns: meta.Columns,
		RunColumn:   runColumn,
		Rows:        make([]Row, 0, len(hits)),
	}

	for _, metaRow := range meta.Rows {
		key := metaRow[runIdx]
		matches := bySample[key]
		if len(matches) == 0 {
			res.Rows = append(res.Rows, Row{Meta: metaRow})
			continue
		}
		for _, hitIdx := range matches {
			res.Rows = append(res.Rows, Row{
				Meta: metaRow,
				Hit:  &hits[hitIdx],
			})
		}
	}

	return res, nil
}

// MetaValue returns the value of a metadata column in the given row.
// The second return is false when the column does not exist.
func (t *Table) MetaValue(r Row, column string) (string, bool) {
	for i, name := range t.MetaColumns {
		if name == column {
			if i >= len(r.Meta) {
				return "", false
			}
			return r.Meta[i], true
		}
	}
	return "", false
}

// Len returns the number of joined rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Matched returns the number of rows carrying an alignment record.
func (t *Table) Matched() int {
	var n int
	for i := range t.Rows {
		if t.Rows[i].Hit != nil {
			n++
		}
	}
	return n
}
