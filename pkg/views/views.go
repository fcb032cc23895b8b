// Package views provides read-only summaries over the joined table.
//
// Every view is a pure function: filter by metadata attributes, group,
// count or summarize a numeric hit field. Views never mutate their input
// and have no side effects.
package views

import (
	"math"
	"sort"

	"github.com/cjnoack/skinblast/pkg/relate"
)

// Field selects a numeric hit field for distribution views.
type Field string

const (
	FieldPercentIdentity Field = "pident"
	FieldAlignLength     Field = "length"
	FieldMismatches      Field = "mismatch"
	FieldGapOpens        Field = "gapopen"
	FieldEValue          Field = "evalue"
	FieldBitScore        Field = "bitscore"
)

// TaxonCount is one row of a ranked taxa table.
type TaxonCount struct {
	Name  string
	Count int
}

// Summary describes the distribution of a numeric hit field within one
// group.
type Summary struct {
	Group  string
	N      int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Bin is one fixed-width histogram bin over [Low, High).
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Filter returns a new table restricted to rows whose metadata columns
// equal every value in where. Rows with nil hits are kept when their
// metadata matches - filtering is a metadata operation. An unknown column
// name is an error rather than an empty result.
func Filter(t *relate.Table, where map[string]string) (*relate.Table, error) {
	for column := range where {
		if !hasColumn(t, column) {
			return nil, ColumnError(column, t.MetaColumns)
		}
	}

	res := &relate.Table{
		MetaColumns: t.MetaColumns,
		RunColumn:   t.RunColumn,
	}
	for _, row := range t.Rows {
		if matches(t, row, where) {
			res.Rows = append(res.Rows, row)
		}
	}
	return res, nil
}

func hasColumn(t *relate.Table, column string) bool {
	for _, name := range t.MetaColumns {
		if name == column {
			return true
		}
	}
	return false
}

func matches(t *relate.Table, row relate.Row, where map[string]string) bool {
	for column, want := range where {
		got, ok := t.MetaValue(row, column)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// TopTaxa groups hit rows by subject scientific name, counts them, and
// returns the k most frequent taxa in descending count order. Ties break
// by first appearance in the table, which keeps the ranking deterministic
// for a fixed input order. A nil canon leaves names as-is; otherwise every
// name passes through canon before grouping.
func TopTaxa(t *relate.Table, k int, canon func(string) string) []TaxonCount {
	counts := make(map[string]int)
	first := make(map[string]int)

	var seen int
	for i := range t.Rows {
		hit := t.Rows[i].Hit
		if hit == nil {
			continue
		}
		name := hit.SubjectSciName
		if canon != nil {
			name = canon(name)
		}
		if _, ok := counts[name]; !ok {
			first[name] = seen
		}
		counts[name]++
		seen++
	}

	res := make([]TaxonCount, 0, len(counts))
	for name, count := range counts {
		res = append(res, TaxonCount{Name: name, Count: count})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return first[res[i].Name] < first[res[j].Name]
	})

	if k > 0 && len(res) > k {
		res = res[:k]
	}
	return res
}

// CohortValues returns the distinct values of a metadata column in first
// appearance order. Empty values are skipped.
func CohortValues(t *relate.Table, column string) ([]string, error) {
	if !hasColumn(t, column) {
		return nil, ColumnError(column, t.MetaColumns)
	}

	var res []string
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		val, _ := t.MetaValue(row, column)
		if val == "" || seen[val] {
			continue
		}
		seen[val] = true
		res = append(res, val)
	}
	return res, nil
}

// Distribution summarizes a numeric hit field per group, where groups are
// the distinct values of a metadata column. Groups appear in first
// appearance order; rows with nil hits contribute nothing.
func Distribution(
	t *relate.Table,
	field Field,
	groupColumn string,
) ([]Summary, error) {
	if !hasColumn(t, groupColumn) {
		return nil, ColumnError(groupColumn, t.MetaColumns)
	}
	value, err := fieldValue(field)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]float64)
	var order []string
	for i := range t.Rows {
		hit := t.Rows[i].Hit
		if hit == nil {
			continue
		}
		group, _ := t.MetaValue(t.Rows[i], groupColumn)
		if _, ok := groups[group]; !ok {
			order = append(order, group)
		}
		groups[group] = append(groups[group], value(t.Rows[i]))
	}

	res := make([]Summary, 0, len(order))
	for _, group := range order {
		res = append(res, summarize(group, groups[group]))
	}
	return res, nil
}

// Values collects a numeric hit field from every hit row in table order.
func Values(t *relate.Table, field Field) ([]float64, error) {
	value, err := fieldValue(field)
	if err != nil {
		return nil, err
	}
	var res []float64
	for i := range t.Rows {
		if t.Rows[i].Hit == nil {
			continue
		}
		res = append(res, value(t.Rows[i]))
	}
	return res, nil
}

// HistogramBins buckets values into fixed-width bins starting at the
// floor of the minimum value. Width must be positive; empty input yields
// no bins. Every value lands in [Low, High), except the maximum which is
// kept in the last bin.
func HistogramBins(values []float64, width float64) []Bin {
	if len(values) == 0 || width <= 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	start := math.Floor(lo/width) * width
	n := int(math.Floor((hi-start)/width)) + 1

	res := make([]Bin, n)
	for i := range res {
		res[i].Low = start + float64(i)*width
		res[i].High = res[i].Low + width
	}
	for _, v := range values {
		idx := int(math.Floor((v - start) / width))
		if idx >= n {
			idx = n - 1
		}
		res[idx].Count++
	}
	return res
}

func fieldValue(field Field) (func(relate.Row) float64, error) {
	switch field {
	case FieldPercentIdentity:
		return func(r relate.Row) float64 { return r.Hit.PercentIdentity }, nil
	case FieldAlignLength:
		return func(r relate.Row) float64 { return float64(r.Hit.AlignLength) }, nil
	case FieldMismatches:
		return func(r relate.Row) float64 { return float64(r.Hit.Mismatches) }, nil
	case FieldGapOpens:
		return func(r relate.Row) float64 { return float64(r.Hit.GapOpens) }, nil
	case FieldEValue:
		return func(r relate.Row) float64 { return r.Hit.EValue }, nil
	case FieldBitScore:
		return func(r relate.Row) float64 { return r.Hit.BitScore }, nil
	default:
		return nil, FieldError(string(field))
	}
}

func summarize(group string, values []float64) Summary {
	res := Summary{Group: group, N: len(values)}
	if len(values) == 0 {
		return res
	}

	res.Min, res.Max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		res.Min = math.Min(res.Min, v)
		res.Max = math.Max(res.Max, v)
	}
	res.Mean = sum / float64(len(values))

	var sqDiff float64
	for _, v := range values {
		sqDiff += (v - res.Mean) * (v - res.Mean)
	}
	if len(values) > 1 {
		res.StdDev = math.Sqrt(sqDiff / float64(len(values)-1))
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		res.Median = sorted[mid]
	} else {
		res.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return res
}
