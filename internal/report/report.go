// Package report turns a slice of Jira issues into the shapes the
// output formats want: aligned terminal tables, tab-delimited text,
// HTML fragments, and slide bullets.
package report

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/lderezinski/wkreport/internal/api"
	"github.com/lderezinski/wkreport/internal/table"
	"github.com/lderezinski/wkreport/internal/util"
)

// DefaultMaxSummary is the rune budget for the summary column when
// neither the command line nor wkreport.toml overrides it.
const DefaultMaxSummary = 150

// Headers is the column order shared by every tabular format.
var Headers = []string{"KEY", "SUMMARY", "STATUS", "PARENT", "RESOLVED"}

func maxOrDefault(maxSummary int) int {
	if maxSummary <= 0 {
		return DefaultMaxSummary
	}
	return maxSummary
}

// displaySummary merges the parent key into the summary so grouped
// work reads as "PARENT / summary". The summary is truncated before
// and after the merge, keeping the whole cell inside the budget.
func displaySummary(issue api.Issue, maxSummary int) string {
	summary := util.Truncate(strings.TrimSpace(issue.Summary), maxSummary)
	parent := strings.TrimSpace(issue.Parent)
	if parent != "" {
		summary = util.Truncate(parent+" / "+summary, maxSummary)
	}
	return summary
}

// Rows renders issues as rows of cells, headers first. This is the
// input shape for the HTML and tab-delimited renderers.
func Rows(issues []api.Issue, maxSummary int) [][]string {
	maxSummary = maxOrDefault(maxSummary)
	rows := make([][]string, 0, len(issues)+1)
	rows = append(rows, Headers)
	for _, issue := range issues {
		rows = append(rows, []string{
			issue.Key,
			displaySummary(issue, maxSummary),
			issue.Status,
			strings.TrimSpace(issue.Parent),
			issue.Resolved,
		})
	}
	return rows
}

// Table builds an aligned terminal table from the issues.
func Table(issues []api.Issue, maxSummary int) table.Table {
	rows := Rows(issues, maxSummary)
	t := table.New(rows[0]...)
	for _, row := range rows[1:] {
		t.AddRow(row...)
	}
	return t
}

// TabDelimited renders issues as tab-separated lines, headers first,
// one trailing newline per line. The shape pastes cleanly into a
// spreadsheet.
func TabDelimited(issues []api.Issue, maxSummary int) string {
	var sb strings.Builder
	for _, row := range Rows(issues, maxSummary) {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// JSON renders the untruncated issues as an indented JSON array.
func JSON(issues []api.Issue) ([]byte, error) {
	return json.MarshalIndent(issues, "", "  ")
}

// Sort orders issues for tabular formats: by parent, then status,
// then key, all case-insensitively. The sort is stable so equal
// issues keep their server order.
func Sort(issues []api.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		parentI := sortKey(issues[i].Parent)
		parentJ := sortKey(issues[j].Parent)
		if parentI == parentJ {
			statusI := sortKey(issues[i].Status)
			statusJ := sortKey(issues[j].Status)
			if statusI == statusJ {
				return sortKey(issues[i].Key) < sortKey(issues[j].Key)
			}
			return statusI < statusJ
		}
		return parentI < parentJ
	})
}

// SortByStatus orders issues by status then key, which is the
// grouping the slides format wants.
func SortByStatus(issues []api.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		statusI := sortKey(issues[i].Status)
		statusJ := sortKey(issues[j].Status)
		if statusI == statusJ {
			return sortKey(issues[i].Key) < sortKey(issues[j].Key)
		}
		return statusI < statusJ
	})
}

func sortKey(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
