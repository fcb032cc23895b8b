package ioreport

import (
	"fmt"

	"github.com/gnames/gn"

	"github.com/cjnoack/skinblast/pkg/errcode"
)

// FormatError creates an error for an unsupported dump format.
func FormatError(format string) error {
	msg := `Unsupported output format

<em>Requested format:</em> %s
<em>Valid formats:</em> csv, tsv, json`

	vars := []any{format}

	return &gn.Error{
		Code: errcode.ReportRenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported format %q", format),
	}
}

// RenderError creates an error for when output cannot be encoded.
func RenderError(err error) error {
	msg := "Cannot encode output"

	return &gn.Error{
		Code: errcode.ReportRenderError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot encode output: %w", err),
	}
}

// WriteError creates an error for when output cannot be written.
func WriteError(err error) error {
	msg := "Cannot write output"

	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot write output: %w", err),
	}
}
