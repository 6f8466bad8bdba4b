package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	t.Setenv("WKREPORT_STORE", path)
	return path
}

func TestReadMissingFile(t *testing.T) {
	useTempStore(t)
	assert.Equal(t, Store{}, Read())
}

func TestRememberAndLookupFilter(t *testing.T) {
	path := useTempStore(t)
	const base = "https://example.atlassian.net"

	st := Read()
	_, ok := st.LookupFilter(base, "Team weekly")
	require.False(t, ok)

	st.RememberFilter(base, "Team Weekly", "10042")

	_, err := os.Stat(path)
	require.NoError(t, err, "RememberFilter should persist the store")

	st = Read()
	id, ok := st.LookupFilter(base, "team weekly")
	require.True(t, ok, "lookup should be case-insensitive")
	assert.Equal(t, "10042", id)
}

func TestLookupFilterOtherInstance(t *testing.T) {
	useTempStore(t)

	st := Read()
	st.RememberFilter("https://one.atlassian.net", "Weekly", "1")

	st = Read()
	_, ok := st.LookupFilter("https://two.atlassian.net", "Weekly")
	assert.False(t, ok, "cached IDs must not leak across instances")
}

func TestRememberFilterResetsOnInstanceChange(t *testing.T) {
	useTempStore(t)

	st := Read()
	st.RememberFilter("https://one.atlassian.net", "Weekly", "1")
	st.RememberFilter("https://two.atlassian.net", "Monthly", "2")

	st = Read()
	_, ok := st.LookupFilter("https://two.atlassian.net", "Weekly")
	assert.False(t, ok, "old instance's filters should be discarded")

	id, ok := st.LookupFilter("https://two.atlassian.net", "Monthly")
	require.True(t, ok)
	assert.Equal(t, "2", id)
}

func TestReadDiscardsIncompatibleVersion(t *testing.T) {
	path := useTempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o777))
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 999, "filters": {"x": "1"}}`), 0o666))

	assert.Equal(t, Store{}, Read())
}
