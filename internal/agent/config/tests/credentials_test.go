package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kscius/aura-test/internal/agent/config"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aura", "credentials.json")

	want := &config.Credentials{Token: "tok-123", Email: "user@example.com"}
	require.NoError(t, config.Save(path, want))

	// файл не должен быть читаем для группы/остальных
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// Отсутствующий файл — не ошибка, а пустые креды: клиент ещё не логинился.
func TestLoad_MissingFile(t *testing.T) {
	got, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, &config.Credentials{}, got)
}

func TestLoad_BrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
