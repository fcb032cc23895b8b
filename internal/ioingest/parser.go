// Package ioingest implements the Aggregator interface for BLAST tabular
// output. This is an impure I/O package that discovers and reads per-sample
// result files.
package ioingest

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/cjnoack/skinblast/pkg/blast"
)

// parseFile reads one BLAST tabular output file into hits. The file must
// exist, be non-empty, and hold only valid rows of the fixed schema.
func parseFile(path string) ([]blast.Hit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FileOpenError(path, err)
	}
	defer f.Close()

	var res []blast.Hit
	line := 0
	scanner := bufio.NewScanner(f)
	// Some hits carry long subject names; default token size is too tight.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line++
		row := scanner.Text()
		if row == "" {
			continue
		}
		fields := strings.Split(row, "\t")
		hit, err := blast.ParseRow(fields)
		if err != nil {
			if errors.Is(err, blast.ErrQuerySeqID) {
				return nil, QueryIDError(path, line, err)
			}
			return nil, RowError(path, line, err)
		}
		res = append(res, hit)
	}
	if err := scanner.Err(); err != nil {
		return nil, FileReadError(path, err)
	}

	if len(res) == 0 {
		return nil, EmptyFileError(path)
	}

	return res, nil
}
