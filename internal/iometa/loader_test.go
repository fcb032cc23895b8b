package iometa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjnoack/skinblast/pkg/config"
)

// innerErr unwraps the diagnostic error carried by a gn.Error.
func innerErr(t *testing.T, err error) string {
	t.Helper()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	require.NotNil(t, gnErr.Err)
	return gnErr.Err.Error()
}

func metaConfig(path string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptMetadataPath(path)})
	return cfg
}

// TestLoad verifies the metadata table loads with all columns as text.
func TestLoad(t *testing.T) {
	table, err := New(
		metaConfig(filepath.Join("testdata", "SraRunTable.txt")),
	).Load()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Run_s", "sex_s", "env_material_s", "sample_type_s",
			"host_subject_id_s"},
		table.Columns)
	require.Equal(t, 4, table.Len())

	sex, ok := table.Value(table.Rows[0], "sex_s")
	require.True(t, ok)
	assert.Equal(t, "female", sex)

	run, ok := table.Value(table.Rows[3], "Run_s")
	require.True(t, ok)
	assert.Equal(t, "ERR1942283", run)
}

// TestLoad_Missing verifies a missing metadata file fails.
func TestLoad_Missing(t *testing.T) {
	_, err := New(metaConfig("testdata/absent.txt")).Load()
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "absent.txt")
}

// TestLoad_EmptyFile verifies a file without a header row fails.
func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := New(metaConfig(path)).Load()
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "empty")
}

// TestLoad_MissingRunColumn verifies the configured run column must be
// present in the header.
func TestLoad_MissingRunColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norun.txt")
	data := "accession\tsex_s\nERR1942280\tfemale\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := New(metaConfig(path)).Load()
	require.Error(t, err)
	assert.Contains(t, innerErr(t, err), "Run_s")
}

// TestLoad_PadsShortRows verifies short rows pad to header length.
func TestLoad_PadsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	data := "Run_s\tsex_s\tenv_material_s\nERR1942280\tfemale\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	table, err := New(metaConfig(path)).Load()
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	material, ok := table.Value(table.Rows[0], "env_material_s")
	require.True(t, ok)
	assert.Empty(t, material)
}
