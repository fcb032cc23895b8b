package blast

// Fields is the fixed column order of the expected BLAST tabular output,
// produced with `-outfmt "6 sscinames std"`. Input files carry no header;
// every row must have exactly len(Fields) tab-separated values in this order.
var Fields = []string{
	"sscinames",
	"qseqid",
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

// NumFields is the required field count per row.
var NumFields = len(Fields)

// QuerySeparator joins the sample key and the sequence ordinal inside the
// compound qseqid, e.g. "ERR1942280.1".
const QuerySeparator = "."
