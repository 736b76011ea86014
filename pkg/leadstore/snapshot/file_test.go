package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	snap := NewMemory()

	_, ok, err := snap.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, snap.Save([]byte(`[{"id":"1"}]`)))

	data, ok, err := snap.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestMemoryLoadCopies(t *testing.T) {
	snap := NewMemory()
	require.NoError(t, snap.Save([]byte("abc")))

	data, _, err := snap.Load()
	require.NoError(t, err)
	data[0] = 'z'

	again, _, err := snap.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "leads.json")
	snap, err := NewFile(path)
	require.NoError(t, err)

	_, ok, err := snap.Load()
	require.NoError(t, err)
	assert.False(t, ok, "missing file is not an error")

	require.NoError(t, snap.Save([]byte(`[{"id":"1"}]`)))
	require.NoError(t, snap.Save([]byte(`[{"id":"1"},{"id":"2"}]`)))

	data, ok, err := snap.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"},{"id":"2"}]`, string(data))
}

func TestFileSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	snap, err := NewFile(filepath.Join(dir, "leads.json"))
	require.NoError(t, err)

	require.NoError(t, snap.Save([]byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "leads.json", entries[0].Name())
}
