// Package rank defines heuristics for ordering search results.
package rank

import (
	"strings"

	"github.com/lderezinski/wkreport/internal/api"
)

// Filters reorders filter search results by how well each name matches
// the query: exact matches first, then prefix matches, then substring
// matches, then everything else. Order within a bucket is preserved, so
// Jira's own ranking still breaks ties.
func Filters(query string, filters []api.Filter) []api.Filter {
	needle := strings.ToLower(strings.TrimSpace(query))

	exact := []api.Filter{}
	prefixed := []api.Filter{}
	infixed := []api.Filter{}
	filtered := []api.Filter{}

	for _, filter := range filters {
		lower := strings.ToLower(filter.Name)
		switch {
		case lower == needle:
			exact = append(exact, filter)
		case strings.HasPrefix(lower, needle):
			prefixed = append(prefixed, filter)
		case strings.Contains(lower, needle):
			infixed = append(infixed, filter)
		default:
			filtered = append(filtered, filter)
		}
	}

	curated := make([]api.Filter, 0, len(filters))
	curated = append(curated, exact...)
	curated = append(curated, prefixed...)
	curated = append(curated, infixed...)
	curated = append(curated, filtered...)

	return curated
}
