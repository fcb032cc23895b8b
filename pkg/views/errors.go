package views

import (
	"fmt"
	"strings"

	"github.com/cjnoack/skinblast/pkg/errcode"
	"github.com/gnames/gn"
)

// ColumnError creates an error for when a view references a metadata
// column absent from the joined table.
func ColumnError(column string, columns []string) error {
	msg := `Metadata column not found

<em>Requested column:</em> %s
<em>Available columns:</em> %s`

	vars := []any{column, strings.Join(columns, ", ")}

	return &gn.Error{
		Code: errcode.ViewColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown metadata column %q", column),
	}
}

// FieldError creates an error for when a view references an unknown
// numeric hit field.
func FieldError(field string) error {
	msg := `Unknown numeric field

<em>Requested field:</em> %s
<em>Valid fields:</em> pident, length, mismatch, gapopen, evalue, bitscore`

	vars := []any{field}

	return &gn.Error{
		Code: errcode.ViewFieldError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown numeric field %q", field),
	}
}
