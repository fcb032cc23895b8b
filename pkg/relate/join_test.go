package relate

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjnoack/skinblast/pkg/blast"
	"github.com/cjnoack/skinblast/pkg/sample"
)

// innerErr unwraps the diagnostic error carried by a gn.Error.
func innerErr(t *testing.T, err error) string {
	t.Helper()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	require.NotNil(t, gnErr.Err)
	return gnErr.Err.Error()
}

func testMeta() *sample.Table {
	return &sample.Table{
		Columns: []string{"Run_s", "sex_s", "env_material_s"},
		Rows: [][]string{
			{"ERR1942280", "female", "sebum"},
			{"ERR1942281", "male", "sebum"},
			{"ERR1942282", "female", "dust"},
		},
	}
}

func hit(sampleKey, ordinal, name string) blast.Hit {
	return blast.Hit{
		SubjectSciName: name,
		SampleKey:      sampleKey,
		SeqOrdinal:     ordinal,
	}
}

// TestLeftJoin_WorkedExample verifies the canonical female/sebum example.
func TestLeftJoin_WorkedExample(t *testing.T) {
	hits := []blast.Hit{
		hit("ERR1942280", "1", "Bartonella washoensis"),
	}

	joined, err := LeftJoin(testMeta(), hits, "Run_s")
	require.NoError(t, err)

	var row *Row
	for i := range joined.Rows {
		if joined.Rows[i].Hit != nil {
			row = &joined.Rows[i]
			break
		}
	}
	require.NotNil(t, row, "the matching hit must survive the join")

	assert.Equal(t, "ERR1942280", row.Hit.SampleKey)
	assert.Equal(t, "1", row.Hit.SeqOrdinal)
	assert.Equal(t, "Bartonella washoensis", row.Hit.SubjectSciName)

	sex, ok := joined.MetaValue(*row, "sex_s")
	require.True(t, ok)
	assert.Equal(t, "female", sex)
}

// TestLeftJoin_Totality verifies every metadata row appears: once with a
// nil hit when unmatched, k times when it matches k hits.
func TestLeftJoin_Totality(t *testing.T) {
	hits := []blast.Hit{
		hit("ERR1942281", "1", "Staphylococcus epidermidis"),
		hit("ERR1942281", "2", "Propionibacterium acnes"),
		hit("ERR1942281", "3", "Staphylococcus epidermidis"),
	}

	joined, err := LeftJoin(testMeta(), hits, "Run_s")
	require.NoError(t, err)

	// 2 unmatched metadata rows + 3 matches.
	assert.Equal(t, 5, joined.Len())
	assert.Equal(t, 3, joined.Matched())

	perSample := make(map[string]int)
	nilHits := 0
	for _, row := range joined.Rows {
		runVal, ok := joined.MetaValue(row, "Run_s")
		require.True(t, ok)
		perSample[runVal]++
		if row.Hit == nil {
			nilHits++
		}
	}

	assert.Equal(t, 1, perSample["ERR1942280"],
		"unmatched metadata row appears exactly once")
	assert.Equal(t, 3, perSample["ERR1942281"],
		"metadata row with 3 hits appears 3 times")
	assert.Equal(t, 1, perSample["ERR1942282"])
	assert.Equal(t, 2, nilHits)
}

// TestLeftJoin_DropsUnmatchedHits verifies hits for samples absent from
// metadata never reach the joined table.
func TestLeftJoin_DropsUnmatchedHits(t *testing.T) {
	hits := []blast.Hit{
		hit("ERR9999999", "1", "Escherichia coli"),
		hit("ERR1942280", "1", "Bartonella washoensis"),
	}

	joined, err := LeftJoin(testMeta(), hits, "Run_s")
	require.NoError(t, err)

	assert.Equal(t, 1, joined.Matched(),
		"only the hit with matching metadata survives")
	for _, row := range joined.Rows {
		if row.Hit != nil {
			assert.NotEqual(t, "ERR9999999", row.Hit.SampleKey)
		}
	}
}

// TestLeftJoin_Determinism verifies output order: metadata order outer,
// aggregated hit order inner, stable across runs.
func TestLeftJoin_Determinism(t *testing.T) {
	hits := []blast.Hit{
		hit("ERR1942282", "7", "Corynebacterium"),
		hit("ERR1942280", "2", "Bartonella washoensis"),
		hit("ERR1942280", "1", "Staphylococcus epidermidis"),
	}

	first, err := LeftJoin(testMeta(), hits, "Run_s")
	require.NoError(t, err)
	second, err := LeftJoin(testMeta(), hits, "Run_s")
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-running the join must be idempotent")

	// Metadata order drives: ERR1942280 rows come before ERR1942282.
	require.Equal(t, 4, first.Len())
	assert.Equal(t, "2", first.Rows[0].Hit.SeqOrdinal,
		"hits keep their aggregated order within a sample")
	assert.Equal(t, "1", first.Rows[1].Hit.SeqOrdinal)
	assert.Nil(t, first.Rows[2].Hit, "ERR1942281 has no hits")
	assert.Equal(t, "7", first.Rows[3].Hit.SeqOrdinal)
}

// TestLeftJoin_MissingKeyColumn verifies the join fails fast when the run
// column is absent from metadata.
func TestLeftJoin_MissingKeyColumn(t *testing.T) {
	_, err := LeftJoin(testMeta(), nil, "no_such_column")
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "no_such_column")
}

// TestLeftJoin_EmptyHits verifies a hit-free join keeps all metadata rows.
func TestLeftJoin_EmptyHits(t *testing.T) {
	joined, err := LeftJoin(testMeta(), nil, "Run_s")
	require.NoError(t, err)

	assert.Equal(t, 3, joined.Len())
	assert.Equal(t, 0, joined.Matched())
}
