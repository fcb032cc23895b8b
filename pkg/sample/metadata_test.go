package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cjnoack/skinblast/pkg/sample"
)

func testTable() *sample.Table {
	return &sample.Table{
		Columns: []string{"Run_s", "sex_s", "sample_type_s"},
		Rows: [][]string{
			{"ERR1942280", "female", "skin swab"},
			{"ERR1942281", "male", "skin swab"},
		},
	}
}

func TestColumnIndex(t *testing.T) {
	tbl := testTable()

	assert.Equal(t, 0, tbl.ColumnIndex("Run_s"))
	assert.Equal(t, 1, tbl.ColumnIndex("sex_s"))
	assert.Equal(t, -1, tbl.ColumnIndex("host_s"), "unknown column returns -1")
	assert.Equal(t, -1, tbl.ColumnIndex("run_s"), "lookup is case sensitive")
}

func TestValue(t *testing.T) {
	tbl := testTable()

	val, ok := tbl.Value(tbl.Rows[0], "sex_s")
	assert.True(t, ok)
	assert.Equal(t, "female", val)

	val, ok = tbl.Value(tbl.Rows[1], "Run_s")
	assert.True(t, ok)
	assert.Equal(t, "ERR1942281", val)

	_, ok = tbl.Value(tbl.Rows[0], "no_such_column")
	assert.False(t, ok)

	_, ok = tbl.Value([]string{"ERR1942280"}, "sample_type_s")
	assert.False(t, ok, "short row has no value at the column index")
}

func TestLen(t *testing.T) {
	assert.Equal(t, 2, testTable().Len())
	assert.Equal(t, 0, (&sample.Table{Columns: []string{"Run_s"}}).Len())
}
