package ioreport

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gnames/gnfmt"

	"github.com/cjnoack/skinblast/pkg/blast"
	"github.com/cjnoack/skinblast/pkg/relate"
)

// hitColumns is the header suffix for the alignment half of a dumped row.
// The compound qseqid appears already split into sample_key and
// seq_ordinal, in line with the normalized record shape.
var hitColumns = []string{
	"sscinames",
	"sample_key",
	"seq_ordinal",
	"sseqid",
	"pident",
	"length",
	"mismatch",
	"gapopen",
	"qstart",
	"qend",
	"sstart",
	"send",
	"evalue",
	"bitscore",
}

// jsonRow is the JSON shape of one joined row.
type jsonRow struct {
	Meta map[string]string `json:"metadata"`
	Hit  *blast.Hit        `json:"hit,omitempty"`
}

// Dump writes the joined table to w in the given format: "csv", "tsv" or
// "json". Row order follows the table, so a dump of unchanged input is
// byte-identical between runs.
func Dump(t *relate.Table, format string, w io.Writer) error {
	switch format {
	case "csv":
		return dumpDelimited(t, ',', w)
	case "tsv":
		return dumpDelimited(t, '\t', w)
	case "json":
		return dumpJSON(t, w)
	default:
		return FormatError(format)
	}
}

func dumpDelimited(t *relate.Table, comma rune, w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	header := append([]string{}, t.MetaColumns...)
	header = append(header, hitColumns...)
	if err := cw.Write(header); err != nil {
		return WriteError(err)
	}

	for i := range t.Rows {
		row := append([]string{}, t.Rows[i].Meta...)
		row = append(row, hitFields(t.Rows[i].Hit)...)
		if err := cw.Write(row); err != nil {
			return WriteError(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return WriteError(err)
	}
	return nil
}

func dumpJSON(t *relate.Table, w io.Writer) error {
	rows := make([]jsonRow, len(t.Rows))
	for i := range t.Rows {
		meta := make(map[string]string, len(t.MetaColumns))
		for j, name := range t.MetaColumns {
			meta[name] = t.Rows[i].Meta[j]
		}
		rows[i] = jsonRow{Meta: meta, Hit: t.Rows[i].Hit}
	}

	enc := gnfmt.GNjson{Pretty: true}
	out, err := enc.Encode(rows)
	if err != nil {
		return RenderError(err)
	}
	if _, err = w.Write(out); err != nil {
		return WriteError(err)
	}
	if _, err = w.Write([]byte("\n")); err != nil {
		return WriteError(err)
	}
	return nil
}

// hitFields flattens a hit into dump columns; a nil hit leaves the
// alignment half empty, matching left-join nulls.
func hitFields(h *blast.Hit) []string {
	if h == nil {
		return make([]string, len(hitColumns))
	}
	return []string{
		h.SubjectSciName,
		h.SampleKey,
		h.SeqOrdinal,
		h.SubjectSeqID,
		strconv.FormatFloat(h.PercentIdentity, 'f', -1, 64),
		strconv.Itoa(h.AlignLength),
		strconv.Itoa(h.Mismatches),
		strconv.Itoa(h.GapOpens),
		strconv.Itoa(h.QueryStart),
		strconv.Itoa(h.QueryEnd),
		strconv.Itoa(h.SubjectStart),
		strconv.Itoa(h.SubjectEnd),
		strconv.FormatFloat(h.EValue, 'g', -1, 64),
		strconv.FormatFloat(h.BitScore, 'f', -1, 64),
	}
}
