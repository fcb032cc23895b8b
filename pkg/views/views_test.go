package views

import (
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjnoack/skinblast/pkg/blast"
	"github.com/cjnoack/skinblast/pkg/relate"
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

func testTable(t *testing.T) *relate.Table {
	t.Helper()

	meta := &sample.Table{
		Columns: []string{"Run_s", "sex_s", "env_material_s", "host_subject_id_s"},
		Rows: [][]string{
			{"ERR1942280", "female", "sebum", "F2"},
			{"ERR1942281", "male", "sebum", "M1"},
			{"ERR1942282", "female", "dust", "F2"},
		},
	}

	hits := []blast.Hit{
		{SampleKey: "ERR1942280", SeqOrdinal: "1",
			SubjectSciName: "Bartonella washoensis", Mismatches: 24, AlignLength: 237},
		{SampleKey: "ERR1942280", SeqOrdinal: "2",
			SubjectSciName: "Staphylococcus epidermidis", Mismatches: 2, AlignLength: 250},
		{SampleKey: "ERR1942280", SeqOrdinal: "3",
			SubjectSciName: "Bartonella washoensis", Mismatches: 20, AlignLength: 240},
		{SampleKey: "ERR1942281", SeqOrdinal: "1",
			SubjectSciName: "Propionibacterium acnes", Mismatches: 0, AlignLength: 253},
		{SampleKey: "ERR1942281", SeqOrdinal: "2",
			SubjectSciName: "Staphylococcus epidermidis", Mismatches: 4, AlignLength: 249},
	}

	joined, err := relate.LeftJoin(meta, hits, "Run_s")
	require.NoError(t, err)
	return joined
}

// TestFilter verifies equality filtering on metadata columns.
func TestFilter(t *testing.T) {
	joined := testTable(t)

	sebumFemale, err := Filter(joined, map[string]string{
		"sex_s":          "female",
		"env_material_s": "sebum",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, sebumFemale.Len(),
		"only ERR1942280 rows are female sebum samples")
	for _, row := range sebumFemale.Rows {
		runVal, _ := sebumFemale.MetaValue(row, "Run_s")
		assert.Equal(t, "ERR1942280", runVal)
	}
}

// TestFilter_KeepsNilHits verifies filtering is a metadata operation:
// unmatched metadata rows survive when their attributes match.
func TestFilter_KeepsNilHits(t *testing.T) {
	joined := testTable(t)

	dust, err := Filter(joined, map[string]string{"env_material_s": "dust"})
	require.NoError(t, err)

	require.Equal(t, 1, dust.Len())
	assert.Nil(t, dust.Rows[0].Hit)
}

// TestFilter_UnknownColumn verifies an unknown column is an error, not an
// empty result.
func TestFilter_UnknownColumn(t *testing.T) {
	joined := testTable(t)

	_, err := Filter(joined, map[string]string{"sex": "female"})
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "sex")
}

// TestTopTaxa verifies descending count order with first-appearance
// tie-breaking.
func TestTopTaxa(t *testing.T) {
	joined := testTable(t)

	top := TopTaxa(joined, 0, nil)
	require.Len(t, top, 3)

	assert.Equal(t, "Bartonella washoensis", top[0].Name)
	assert.Equal(t, 2, top[0].Count)
	// Tie at count 2: Staphylococcus appeared before Propionibacterium.
	assert.Equal(t, "Staphylococcus epidermidis", top[1].Name)
	assert.Equal(t, 2, top[1].Count)
	assert.Equal(t, "Propionibacterium acnes", top[2].Name)
	assert.Equal(t, 1, top[2].Count)
}

// TestTopTaxa_Limit verifies the k cutoff.
func TestTopTaxa_Limit(t *testing.T) {
	joined := testTable(t)

	top := TopTaxa(joined, 2, nil)
	assert.Len(t, top, 2)
}

// TestTopTaxa_Canonicalization verifies names pass through canon before
// grouping.
func TestTopTaxa_Canonicalization(t *testing.T) {
	joined := testTable(t)

	// Collapse every name to its genus.
	genus := func(name string) string {
		return strings.Fields(name)[0]
	}
	top := TopTaxa(joined, 0, genus)

	require.NotEmpty(t, top)
	for _, tc := range top {
		assert.NotContains(t, tc.Name, " ",
			"canonicalized names should be bare genera here")
	}
}

// TestCohortValues verifies distinct values in first appearance order.
func TestCohortValues(t *testing.T) {
	joined := testTable(t)

	cohorts, err := CohortValues(joined, "sex_s")
	require.NoError(t, err)
	assert.Equal(t, []string{"female", "male"}, cohorts)

	_, err = CohortValues(joined, "nope")
	assert.Error(t, err)
}

// TestDistribution verifies per-group numeric summaries.
func TestDistribution(t *testing.T) {
	joined := testTable(t)

	summaries, err := Distribution(joined, FieldMismatches, "host_subject_id_s")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	f2 := summaries[0]
	assert.Equal(t, "F2", f2.Group)
	assert.Equal(t, 3, f2.N)
	assert.InDelta(t, (24.0+2+20)/3, f2.Mean, 1e-9)
	assert.InDelta(t, 20, f2.Median, 1e-9)
	assert.InDelta(t, 2, f2.Min, 1e-9)
	assert.InDelta(t, 24, f2.Max, 1e-9)

	m1 := summaries[1]
	assert.Equal(t, "M1", m1.Group)
	assert.Equal(t, 2, m1.N)
	assert.InDelta(t, 2, m1.Mean, 1e-9)
	assert.InDelta(t, 2, m1.Median, 1e-9)
}

// TestDistribution_UnknownField verifies unknown numeric fields fail.
func TestDistribution_UnknownField(t *testing.T) {
	joined := testTable(t)

	_, err := Distribution(joined, Field("gc_content"), "sex_s")
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "gc_content")
}

// TestHistogramBins verifies fixed-width binning.
func TestHistogramBins(t *testing.T) {
	values := []float64{0, 1, 1.5, 2, 4, 4.9}

	bins := HistogramBins(values, 1)
	require.Len(t, bins, 5)

	assert.Equal(t, 1, bins[0].Count) // [0,1): 0
	assert.Equal(t, 2, bins[1].Count) // [1,2): 1, 1.5
	assert.Equal(t, 1, bins[2].Count) // [2,3): 2
	assert.Equal(t, 0, bins[3].Count) // [3,4)
	assert.Equal(t, 2, bins[4].Count) // [4,5): 4, 4.9

	var total int
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, len(values), total, "every value lands in one bin")
}

// TestHistogramBins_Empty verifies degenerate inputs yield no bins.
func TestHistogramBins_Empty(t *testing.T) {
	assert.Nil(t, HistogramBins(nil, 1))
	assert.Nil(t, HistogramBins([]float64{1, 2}, 0))
}

// TestValues verifies field collection skips nil hits.
func TestValues(t *testing.T) {
	joined := testTable(t)

	values, err := Values(joined, FieldAlignLength)
	require.NoError(t, err)
	assert.Len(t, values, 5, "one value per hit row, nil hits skipped")
}
