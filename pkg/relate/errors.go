package relate

import (
	"fmt"
	"strings"

	"github.com/cjnoack/skinblast/pkg/errcode"
	"github.com/gnames/gn"
)

// JoinKeyError creates an error for when the join key column is missing
// from the metadata header.
func JoinKeyError(runColumn string, columns []string) error {
	msg := `Join key column not found in metadata

<em>Expected column:</em> %s
<em>Available columns:</em> %s

<em>How to fix:</em>
  1. Check the metadata file header row
  2. Set the correct column with --run-column or metadata.run_column`

	vars := []any{runColumn, strings.Join(columns, ", ")}

	return &gn.Error{
		Code: errcode.JoinKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"join key column %q missing from metadata header", runColumn,
		),
	}
}
