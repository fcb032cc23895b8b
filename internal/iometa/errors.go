package iometa

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"

	"github.com/cjnoack/skinblast/pkg/errcode"
)

// ReadError creates an error for when the metadata file cannot be read.
func ReadError(path string, err error) error {
	msg := `Cannot read metadata file

<em>File:</em> %s

<em>How to fix:</em>
  1. Check the file exists and is readable
  2. Set the correct path with --metadata or metadata.path`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.MetadataReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read metadata %s: %w", path, err),
	}
}

// HeaderError creates an error for when the metadata file has no header
// row.
func HeaderError(path string) error {
	msg := `Metadata file has no header row

<em>File:</em> %s

The metadata file must be tab-delimited with a header row naming
every column.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.MetadataHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("metadata %s is empty", path),
	}
}

// RunColumnError creates an error for when the run identifier column is
// absent from the metadata header.
func RunColumnError(path, runColumn string, columns []string) error {
	msg := `Run identifier column not found in metadata

<em>File:</em> %s
<em>Expected column:</em> %s
<em>Available columns:</em> %s

<em>How to fix:</em>
  1. Check the metadata header row
  2. Set the correct column with --run-column or metadata.run_column`

	vars := []any{path, runColumn, strings.Join(columns, ", ")}

	return &gn.Error{
		Code: errcode.MetadataRunColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"run column %q missing from %s", runColumn, path,
		),
	}
}
