package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lderezinski/wkreport/internal/api"
)

func openTempCache(t *testing.T) *Cache {
	t.Helper()
	t.Setenv("WKREPORT_CACHE", filepath.Join(t.TempDir(), "wk", "cache.db"))
	c, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLoadMiss(t *testing.T) {
	c := openTempCache(t)

	_, _, err := c.Load("10042")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestSaveAndLoad(t *testing.T) {
	c := openTempCache(t)
	fetchedAt := time.Date(2026, 2, 6, 9, 5, 0, 0, time.UTC)
	issues := []api.Issue{
		{Key: "ABC-2", Summary: "Second", Status: "Done", Resolved: "2026-02-05 17:30", URL: "https://x/browse/ABC-2"},
		{Key: "ABC-1", Summary: "First", Status: "In Progress", Parent: "ABC"},
	}

	require.NoError(t, c.Save("10042", "Team weekly", issues, fetchedAt))

	loaded, at, err := c.Load("10042")
	require.NoError(t, err)
	assert.Equal(t, issues, loaded, "order and fields should round-trip")
	assert.True(t, at.Equal(fetchedAt))
}

func TestSaveReplacesPreviousFetch(t *testing.T) {
	c := openTempCache(t)

	first := []api.Issue{{Key: "ABC-1", Summary: "Old", Status: "Done"}}
	second := []api.Issue{{Key: "ABC-9", Summary: "New", Status: "In Progress"}}

	require.NoError(t, c.Save("10042", "Team weekly", first, time.Now()))
	require.NoError(t, c.Save("10042", "Team weekly", second, time.Now()))

	loaded, _, err := c.Load("10042")
	require.NoError(t, err)
	assert.Equal(t, second, loaded, "a new fetch should fully replace the old one")
}

func TestSaveEmptyFetch(t *testing.T) {
	c := openTempCache(t)

	require.NoError(t, c.Save("10042", "Team weekly", nil, time.Now()))

	loaded, _, err := c.Load("10042")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFindFilter(t *testing.T) {
	c := openTempCache(t)
	require.NoError(t, c.Save("10042", "Team weekly", nil, time.Now()))

	id, ok := c.FindFilter("10042")
	require.True(t, ok)
	assert.Equal(t, "10042", id)

	id, ok = c.FindFilter("TEAM WEEKLY")
	require.True(t, ok, "name lookup should be case-insensitive")
	assert.Equal(t, "10042", id)

	_, ok = c.FindFilter("unknown")
	assert.False(t, ok)
}

func TestCacheSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	t.Setenv("WKREPORT_CACHE", path)

	c, err := Open()
	require.NoError(t, err)
	require.NoError(t, c.Save("7", "Weekly", []api.Issue{{Key: "ABC-1", Summary: "S", Status: "Done"}}, time.Now()))
	require.NoError(t, c.Close())

	c, err = Open()
	require.NoError(t, err)
	defer c.Close()

	loaded, _, err := c.Load("7")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "ABC-1", loaded[0].Key)
}
