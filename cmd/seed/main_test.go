package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSeedFile(t *testing.T) {
	t.Run("should parse the example file", func(t *testing.T) {
		users, err := readSeedFile("users.example.yaml")

		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "admin", users[0].Role)
		assert.Equal(t, "read_write", users[0].Permissions.Data()["packaging"])
		assert.True(t, users[1].IsActive)
		assert.False(t, users[2].IsActive)
	})

	t.Run("should derive stable ids from the email", func(t *testing.T) {
		path := writeSeed(t, "users:\n  - email: a@example.com\n")

		first, err := readSeedFile(path)
		require.NoError(t, err)
		second, err := readSeedFile(path)
		require.NoError(t, err)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, "staff", first[0].Role, "role defaults to staff")
	})

	t.Run("should reject unknown sections and levels", func(t *testing.T) {
		path := writeSeed(t, "users:\n  - email: a@example.com\n    permissions:\n      kitchen: read_write\n      sb: owner\n")

		_, err := readSeedFile(path)

		assert.Error(t, err)
	})

	t.Run("should reject an account without email", func(t *testing.T) {
		path := writeSeed(t, "users:\n  - fullName: Nobody\n")

		_, err := readSeedFile(path)

		assert.Error(t, err)
	})
}
