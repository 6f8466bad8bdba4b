package report

import (
	"strings"

	"github.com/lderezinski/wkreport/internal/api"
	"github.com/lderezinski/wkreport/internal/table"
)

// SlidesContent renders issues grouped by status as slide-ready
// bullets, in two forms: a plain-text version for pasting into
// speaker notes, and an HTML version whose bullets keep their issue
// hyperlinks. The issues should already be sorted with SortByStatus
// so each status forms one contiguous group.
func SlidesContent(issues []api.Issue, maxSummary int) (string, string) {
	if len(issues) == 0 {
		return "", ""
	}
	maxSummary = maxOrDefault(maxSummary)

	var plain strings.Builder
	var html strings.Builder

	html.WriteString("<html><body>\n")

	currentStatus := ""
	firstStatus := true

	for _, issue := range issues {
		status := strings.TrimSpace(issue.Status)
		if status == "" {
			status = "Unknown"
		}

		if status != currentStatus {
			if !firstStatus {
				html.WriteString("</ul>\n")
				plain.WriteString("\n")
			}
			firstStatus = false
			currentStatus = status

			if plain.Len() > 0 {
				plain.WriteString("\n")
			}
			plain.WriteString(status)
			plain.WriteString("\n")

			html.WriteString("<h2>")
			html.WriteString(table.EscapeString(status))
			html.WriteString("</h2>\n<ul>\n")
		}

		key := strings.TrimSpace(issue.Key)
		summary := displaySummary(issue, maxSummary)
		url := strings.TrimSpace(issue.URL)

		plain.WriteString("- ")
		plain.WriteString(key)
		if summary != "" {
			plain.WriteString(": ")
			plain.WriteString(summary)
		}
		plain.WriteString("\n")

		html.WriteString("  <li>")
		if url != "" {
			html.WriteString(`<a href="`)
			html.WriteString(table.EscapeString(url))
			html.WriteString(`">`)
			html.WriteString(table.EscapeString(key))
			html.WriteString("</a>")
		} else {
			html.WriteString(table.EscapeString(key))
		}
		if summary != "" {
			html.WriteString(": ")
			html.WriteString(table.EscapeString(summary))
		}
		html.WriteString("</li>\n")
	}

	if !firstStatus {
		html.WriteString("</ul>\n")
	}
	html.WriteString("</body></html>")

	return strings.TrimRight(plain.String(), "\n"), html.String()
}
