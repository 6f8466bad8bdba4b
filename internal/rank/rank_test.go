package rank

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lderezinski/wkreport/internal/api"
)

func TestFiltersPrefixInfix(t *testing.T) {
	names := []string{
		"Archive Weekly",
		"All Weekly Things",
		"Weekly Report",
		"Old Weekly Report",
		"Unrelated",
		"Team weekly report",
		"weekly",
		"Also Unrelated",
		"Weekly2",
		"Weekly Bugs",
	}

	filters := []api.Filter{}
	for _, name := range names {
		filters = append(filters, api.Filter{Name: name})
	}

	sorted := Filters("Weekly", filters)

	expected := []string{
		"weekly",
		"Weekly Report",
		"Weekly2",
		"Weekly Bugs",
		"Archive Weekly",
		"All Weekly Things",
		"Old Weekly Report",
		"Team weekly report",
		"Unrelated",
		"Also Unrelated",
	}

	require.Len(t, sorted, len(expected))
	for idx, filter := range sorted {
		require.Equal(t, expected[idx], filter.Name, "position %d", idx)
	}
}

func TestFiltersKeepsDuplicateExactMatches(t *testing.T) {
	filters := []api.Filter{
		{ID: "1", Name: "Weekly"},
		{ID: "2", Name: "weekly"},
		{ID: "3", Name: "Weekly Report"},
	}

	sorted := Filters("weekly", filters)

	require.Equal(t, "1", sorted[0].ID)
	require.Equal(t, "2", sorted[1].ID)
	require.Equal(t, "3", sorted[2].ID)
}

func TestFiltersEmptyInput(t *testing.T) {
	require.Empty(t, Filters("anything", nil))
}
