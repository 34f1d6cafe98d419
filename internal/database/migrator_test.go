package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	files, err := MigrationFiles()
	require.NoError(t, err)

	names, err := fs.Glob(files, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_create_users_and_items.sql", names[0])

	body, err := fs.ReadFile(files, names[0])
	require.NoError(t, err)

	up, down, found := strings.Cut(string(body), "---- create above / drop below ----")
	require.True(t, found)
	assert.Contains(t, up, "CONSTRAINT users_email_key UNIQUE")
	assert.Contains(t, up, "CONSTRAINT items_owner_id_fkey FOREIGN KEY")
	assert.Contains(t, down, "DROP TABLE")
}
