package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	schema "github.com/yigit/schoolhub/migrations"
)

func TestVersionOf(t *testing.T) {
	assert.Equal(t, "001", VersionOf("001_init.sql"))
	assert.Equal(t, "010", VersionOf("migrations/010_add_index_x.sql"))
	assert.Equal(t, "plain.sql", VersionOf("plain.sql"))
}

func TestSortedSQLFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"002_more.sql":  {Data: []byte("SELECT 2;")},
		"001_init.sql":  {Data: []byte("SELECT 1;")},
		"README.md":     {Data: []byte("docs")},
		"sub/003_x.sql": {Data: []byte("SELECT 3;")},
		"010_later.sql": {Data: []byte("SELECT 10;")},
	}

	files, err := SortedSQLFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_more.sql", "010_later.sql"}, files)
}

func TestEmbeddedSchemaCarriesInvariants(t *testing.T) {
	files, err := SortedSQLFiles(schema.Files)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.sql", files[0])

	content, err := schema.Files.ReadFile(files[0])
	require.NoError(t, err)
	sql := string(content)
	assert.Contains(t, sql, "uq_academic_years_current")
	assert.Contains(t, sql, "uq_student_enrollments_live")
	assert.Contains(t, sql, "WHERE deleted_at IS NULL")
}
