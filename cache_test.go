package jieba

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("今天 10 t\n天气 3 n\n"), 0o644))

	tk1, err := NewTokenizer(dictPath, WithCacheDir(dir))
	require.NoError(t, err)
	require.NoError(t, tk1.ensureInitialized())

	cachePath := tk1.cachePath()
	_, err = os.Stat(cachePath)
	require.NoError(t, err, "expected a cache file to be written")

	tk2, err := NewTokenizer(dictPath, WithCacheDir(dir))
	require.NoError(t, err)
	require.NoError(t, tk2.ensureInitialized())

	assert.Equal(t, tk1.dict.getTotal(), tk2.dict.getTotal())
	f1, ok1 := tk1.dict.get("今天")
	f2, ok2 := tk2.dict.get("今天")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, f1, f2)
}

func TestCacheInvalidatedOnSourceChange(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("今天 10 t\n"), 0o644))

	tk1, err := NewTokenizer(dictPath, WithCacheDir(dir))
	require.NoError(t, err)
	require.NoError(t, tk1.ensureInitialized())

	require.NoError(t, os.WriteFile(dictPath, []byte("明天 7 t\n"), 0o644))

	tk2, err := NewTokenizer(dictPath, WithCacheDir(dir))
	require.NoError(t, err)
	require.NoError(t, tk2.ensureInitialized())

	assert.True(t, tk2.dict.contains("明"))
	_, ok := tk2.dict.get("今天")
	assert.False(t, ok)
}

func TestCacheDisabledWithEmptyDir(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("今天 10 t\n"), 0o644))

	tk, err := NewTokenizer(dictPath, WithCacheDir(""))
	require.NoError(t, err)
	assert.Equal(t, "", tk.cachePath())
}
