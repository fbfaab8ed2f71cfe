package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVGetAbsentKey(t *testing.T) {
	kv := NewMemoryKV()

	_, ok := kv.Get("missing")
	assert.False(t, ok)
}

func TestMemoryKVSetThenGet(t *testing.T) {
	kv := NewMemoryKV()

	require.NoError(t, kv.Set(KeyMode, "advanced"))

	v, ok := kv.Get(KeyMode)
	assert.True(t, ok)
	assert.Equal(t, "advanced", v)
}

func TestFileKVMissingFileIsEmpty(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "state.json"))

	_, ok := kv.Get(KeyAddedRepositories)
	assert.False(t, ok)
}

func TestFileKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adrgrip", "state.json")
	kv := NewFileKV(path)

	require.NoError(t, kv.Set(KeyAddedRepositories, `[{"fullName":"org/repo"}]`))
	require.NoError(t, kv.Set(KeyMode, "professional"))

	// A fresh instance must see what the first one wrote
	reopened := NewFileKV(path)
	v, ok := reopened.Get(KeyAddedRepositories)
	assert.True(t, ok)
	assert.Equal(t, `[{"fullName":"org/repo"}]`, v)

	v, ok = reopened.Get(KeyMode)
	assert.True(t, ok)
	assert.Equal(t, "professional", v)
}

func TestFileKVSetOverwrites(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "state.json"))

	require.NoError(t, kv.Set(KeyMode, "basic"))
	require.NoError(t, kv.Set(KeyMode, "advanced"))

	v, _ := kv.Get(KeyMode)
	assert.Equal(t, "advanced", v)
}

func TestFileKVCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	kv := NewFileKV(path)
	_, ok := kv.Get(KeyMode)
	assert.False(t, ok)
}
