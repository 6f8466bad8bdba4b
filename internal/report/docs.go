package report

import (
	"strings"

	"github.com/lderezinski/wkreport/internal/api"
	"github.com/lderezinski/wkreport/internal/table"
)

// DocsHTML renders issues as a bordered HTML table that pastes into
// Google Docs with visible gridlines. Issue keys become hyperlinks
// when the issue carries a browse URL.
func DocsHTML(issues []api.Issue, maxSummary int) string {
	maxSummary = maxOrDefault(maxSummary)

	var sb strings.Builder
	sb.WriteString(`<table border="1" cellspacing="0" cellpadding="4">` + "\n")
	sb.WriteString("  <tr>")
	for _, header := range Headers {
		sb.WriteString("<td>")
		sb.WriteString(header)
		sb.WriteString("</td>")
	}
	sb.WriteString("</tr>\n")

	for _, issue := range issues {
		key := table.EscapeString(issue.Key)
		url := table.EscapeString(strings.TrimSpace(issue.URL))

		sb.WriteString("  <tr><td>")
		if url != "" {
			sb.WriteString(`<a href="`)
			sb.WriteString(url)
			sb.WriteString(`">`)
			sb.WriteString(key)
			sb.WriteString("</a>")
		} else {
			sb.WriteString(key)
		}
		sb.WriteString("</td><td>")
		sb.WriteString(table.EscapeString(displaySummary(issue, maxSummary)))
		sb.WriteString("</td><td>")
		sb.WriteString(table.EscapeString(issue.Status))
		sb.WriteString("</td><td>")
		sb.WriteString(table.EscapeString(strings.TrimSpace(issue.Parent)))
		sb.WriteString("</td><td>")
		sb.WriteString(table.EscapeString(issue.Resolved))
		sb.WriteString("</td></tr>\n")
	}

	sb.WriteString("</table>")
	return sb.String()
}
