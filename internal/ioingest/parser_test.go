package ioingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// innerErr unwraps the diagnostic error carried by a gn.Error.
func innerErr(t *testing.T, err error) string {
	t.Helper()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	require.NotNil(t, gnErr.Err)
	return gnErr.Err.Error()
}

// TestParseFile verifies a well-formed result file parses completely.
func TestParseFile(t *testing.T) {
	hits, err := parseFile(filepath.Join("testdata", "ERR1942280.tsv"))
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "Bartonella washoensis", hits[0].SubjectSciName)
	assert.Equal(t, "ERR1942280", hits[0].SampleKey)
	assert.Equal(t, "1", hits[0].SeqOrdinal)
	assert.Equal(t, 24, hits[0].Mismatches)

	assert.Equal(t, "2", hits[1].SeqOrdinal)
	assert.Equal(t, "3", hits[2].SeqOrdinal)
}

// TestParseFile_Missing verifies a missing file is an error.
func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join("testdata", "no_such_file.tsv"))
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "no_such_file.tsv")
}

// TestParseFile_Empty verifies an empty file is an error rather than an
// empty table.
func TestParseFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "empty")
}

// TestParseFile_WrongFieldCount verifies a short row fails and the error
// names the file and line.
func TestParseFile_WrongFieldCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.tsv")
	row := "Bartonella washoensis\tERR1942280.1\tCP019489.1\t86.497\n"
	require.NoError(t, os.WriteFile(path, []byte(row), 0644))

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "short.tsv:1")
	assert.Contains(t, innerErr(t, err), "field count")
}

// TestParseFile_BadQueryID verifies a qseqid without a separator fails.
func TestParseFile_BadQueryID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badid.tsv")
	row := "Bartonella washoensis\tERR1942280\tCP019489.1\t86.497\t237\t24\t8\t1\t233\t458164\t458395\t1e-66\t257\n"
	require.NoError(t, os.WriteFile(path, []byte(row), 0644))

	_, err := parseFile(path)
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "ERR1942280")
}
