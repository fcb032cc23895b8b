package iodb

import (
	"fmt"

	"github.com/gnames/gn"

	"github.com/cjnoack/skinblast/pkg/errcode"
)

// OpenError creates an error for when the SQLite file cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open SQLite database

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check the parent directory exists and is writable
  2. Check the file is not locked by another process`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open sqlite db %s: %w", path, err),
	}
}

// SchemaError creates an error for a failed DDL statement.
func SchemaError(stmt string, err error) error {
	msg := "Cannot create export schema"

	return &gn.Error{
		Code: errcode.ExportSchemaError,
		Msg:  msg,
		Err:  fmt.Errorf("schema statement failed: %w\n%s", err, stmt),
	}
}

// InsertError creates an error for a failed row insert.
func InsertError(err error) error {
	msg := "Cannot write rows to export database"

	return &gn.Error{
		Code: errcode.ExportInsertError,
		Msg:  msg,
		Err:  fmt.Errorf("insert failed: %w", err),
	}
}
