// Package blast holds the normalized representation of BLAST tabular hits.
//
// This is a pure package - parsing is computation over already-read rows,
// file access lives in internal/ioingest.
package blast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrQuerySeqID marks a compound query identifier that cannot be split
// into a sample key and a sequence ordinal.
var ErrQuerySeqID = errors.New("malformed query identifier")

// Hit is one normalized BLAST alignment record. The compound query
// identifier of the raw row is split into SampleKey and SeqOrdinal;
// SampleKey + QuerySeparator + SeqOrdinal reconstructs the original qseqid.
type Hit struct {
	// SubjectSciName is the scientific name of the matched organism
	// (sscinames).
	SubjectSciName string `json:"sscinames"`

	// SampleKey identifies the originating biological sample, usually an
	// SRA run accession such as "ERR1942280".
	SampleKey string `json:"sample_key"`

	// SeqOrdinal disambiguates multiple query sequences from one sample.
	SeqOrdinal string `json:"seq_ordinal"`

	SubjectSeqID    string  `json:"sseqid"`
	PercentIdentity float64 `json:"pident"`
	AlignLength     int     `json:"length"`
	Mismatches      int     `json:"mismatch"`
	GapOpens        int     `json:"gapopen"`
	QueryStart      int     `json:"qstart"`
	QueryEnd        int     `json:"qend"`
	SubjectStart    int     `json:"sstart"`
	SubjectEnd      int     `json:"send"`
	EValue          float64 `json:"evalue"`
	BitScore        float64 `json:"bitscore"`
}

// QuerySeqID reconstructs the compound query identifier of the raw row.
func (h Hit) QuerySeqID() string {
	return h.SampleKey + QuerySeparator + h.SeqOrdinal
}

// SplitQuerySeqID splits a compound query identifier into its sample key
// and sequence ordinal. The split happens on the first separator
// occurrence; any further separators stay inside the ordinal. An
// identifier without a separator, or with an empty part on either side,
// is malformed.
func SplitQuerySeqID(qseqid string) (string, string, error) {
	parts := strings.SplitN(qseqid, QuerySeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf(
			"%w %q: want <sample>%s<ordinal>",
			ErrQuerySeqID, qseqid, QuerySeparator,
		)
	}
	return parts[0], parts[1], nil
}

// ParseRow converts one raw row into a Hit. The row must have exactly
// NumFields values in the Fields order. Numeric fields are coerced with
// strconv; any coercion failure names the offending column.
func ParseRow(fields []string) (Hit, error) {
	var h Hit
	if len(fields) != NumFields {
		return h, fmt.Errorf(
			"wrong field count: got %d, want %d", len(fields), NumFields,
		)
	}

	sampleKey, seqOrdinal, err := SplitQuerySeqID(fields[1])
	if err != nil {
		return h, err
	}

	h.SubjectSciName = fields[0]
	h.SampleKey = sampleKey
	h.SeqOrdinal = seqOrdinal
	h.SubjectSeqID = fields[2]

	if h.PercentIdentity, err = parseFloat("pident", fields[3]); err != nil {
		return h, err
	}
	if h.AlignLength, err = parseInt("length", fields[4]); err != nil {
		return h, err
	}
	if h.Mismatches, err = parseInt("mismatch", fields[5]); err != nil {
		return h, err
	}
	if h.GapOpens, err = parseInt("gapopen", fields[6]); err != nil {
		return h, err
	}
	if h.QueryStart, err = parseInt("qstart", fields[7]); err != nil {
		return h, err
	}
	if h.QueryEnd, err = parseInt("qend", fields[8]); err != nil {
		return h, err
	}
	if h.SubjectStart, err = parseInt("sstart", fields[9]); err != nil {
		return h, err
	}
	if h.SubjectEnd, err = parseInt("send", fields[10]); err != nil {
		return h, err
	}
	if h.EValue, err = parseFloat("evalue", fields[11]); err != nil {
		return h, err
	}
	if h.BitScore, err = parseFloat("bitscore", fields[12]); err != nil {
		return h, err
	}

	return h, nil
}

func parseFloat(column, val string) (float64, error) {
	res, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse %q as number", column, val)
	}
	return res, nil
}

func parseInt(column, val string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse %q as integer", column, val)
	}
	return res, nil
}
