package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"

	"github.com/cjnoack/skinblast/pkg/errcode"
)

func LoadError(path string, err error) error {
	msg := `Cannot load configuration from <em>%s</em>

The file exists but its content does not match the expected structure.

How to fix:
  1. Compare the file with the documented template
  2. Or delete the file; a fresh one is generated on the next run`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigLoadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load config %s: %w",
			fn, path, err),
	}
}
