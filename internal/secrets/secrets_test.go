// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDirectory(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadReadsAndTrims(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classifier-api-key"), []byte("  sk-123\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server-api-key"), []byte("abc"), 0o600))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"classifier-api-key": "sk-123",
		"server-api-key":     "abc",
	}, got)
}

func TestLoadSkipsDotfilesAndEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty-key"), []byte("  \n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetPrecedence(t *testing.T) {
	loaded := map[string]string{"classifier-api-key": "from-file"}

	assert.Equal(t, "from-config", Get(loaded, "classifier-api-key", "from-config"))
	assert.Equal(t, "from-file", Get(loaded, "classifier-api-key", ""))
	assert.Equal(t, "", Get(loaded, "missing", ""))
}
