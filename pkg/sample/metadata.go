// Package sample holds the sample metadata table.
//
// Metadata arrives as a tab-delimited file with a header row (an SRA run
// table export). All values stay as text - downstream views consume columns
// by exact name and decide for themselves what a value means.
package sample

import "slices"

// Table is an ordered metadata table: one row per sequenced sample.
type Table struct {
	// Columns is the header row in file order.
	Columns []string

	// Rows are the data rows in file order; each row has len(Columns)
	// values.
	Rows [][]string
}

// ColumnIndex returns the position of a column by exact name,
// or -1 when the column is absent.
func (t *Table) ColumnIndex(name string) int {
	return slices.Index(t.Columns, name)
}

// Value returns the value of the named column in the given row.
// The second return is false when the column does not exist.
func (t *Table) Value(row []string, column string) (string, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
