package ioingest

import (
	"fmt"

	"github.com/gnames/gn"

	"github.com/cjnoack/skinblast/pkg/blast"
	"github.com/cjnoack/skinblast/pkg/errcode"
)

// ResultsDirError creates an error for when the results directory cannot
// be scanned.
func ResultsDirError(dir string, err error) error {
	msg := `Cannot scan results directory

<em>Directory:</em> %s

<em>How to fix:</em>
  1. Check the directory exists and is readable
  2. Set the correct path with --results or ingest.results_dir`

	vars := []any{dir}

	return &gn.Error{
		Code: errcode.ResultsDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot scan results directory %s: %w", dir, err),
	}
}

// NoResultFilesError creates an error for when the results directory holds
// no files matching the configured pattern.
func NoResultFilesError(dir, pattern string) error {
	msg := `No BLAST result files found

<em>Directory:</em> %s
<em>Pattern:</em> %s

<em>How to fix:</em>
  1. Check the directory holds per-sample BLAST output
  2. Adjust the pattern with ingest.file_pattern`

	vars := []any{dir, pattern}

	return &gn.Error{
		Code: errcode.ResultsEmptyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"no files matching %q in %s", pattern, dir,
		),
	}
}

// FileOpenError creates an error for when a result file cannot be opened.
func FileOpenError(path string, err error) error {
	msg := "Cannot open result file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ParseFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// FileReadError creates an error for when a result file cannot be read.
func FileReadError(path string, err error) error {
	msg := "Cannot read result file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ParseFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// EmptyFileError creates an error for when a result file holds no rows.
// An empty file usually means a truncated upload, not an empty sample.
func EmptyFileError(path string) error {
	msg := `Result file is empty

<em>File:</em> %s

An empty result file usually means a failed or truncated BLAST run.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ParseFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("empty result file %s", path),
	}
}

// QueryIDError creates an error for a row whose compound query identifier
// cannot be split into sample key and sequence ordinal.
func QueryIDError(path string, line int, err error) error {
	msg := `Malformed query identifier in result file

<em>File:</em> %s
<em>Line:</em> %d
<em>Problem:</em> %v

Query identifiers must look like <em>ERR1942280.1</em>: a sample key and
a sequence ordinal separated by %q.`

	vars := []any{path, line, err, blast.QuerySeparator}

	return &gn.Error{
		Code: errcode.ParseQueryIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s:%d: %w", path, line, err),
	}
}

// RowError creates an error for a malformed row, naming file and line.
func RowError(path string, line int, err error) error {
	msg := `Malformed row in result file

<em>File:</em> %s
<em>Line:</em> %d
<em>Problem:</em> %v

Rows must have exactly %d tab-separated fields:
  %v`

	vars := []any{path, line, err, blast.NumFields, blast.Fields}

	return &gn.Error{
		Code: errcode.ParseRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s:%d: %w", path, line, err),
	}
}

// AggregationError wraps a per-file failure; the whole aggregation aborts
// so a missing or broken file never silently drops from the report.
func AggregationError(path string, err error) error {
	msg := `Aggregation failed

<em>File:</em> %s
<em>Problem:</em> %v

One result file failed to parse, so the whole run was aborted
rather than producing a partial table.`

	inner := err
	if gnErr, ok := err.(*gn.Error); ok && gnErr.Err != nil {
		inner = gnErr.Err
	}
	vars := []any{path, inner}

	return &gn.Error{
		Code: errcode.AggregationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("aggregation failed on %s: %w", path, inner),
	}
}
