package table

import "strings"

// htmlEscaper rewrites the five characters that can change meaning
// inside HTML. All replacements happen in a single left-to-right
// pass, so the ampersands introduced by one rule are never rewritten
// by another. We intentionally do not use html.EscapeString here: its
// choice of entity for the apostrophe differs, and downstream
// consumers of the report markup compare output byte for byte.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeString returns s with HTML-special characters replaced by
// entity references, making it safe to embed in markup. Text without
// special characters passes through unchanged.
func EscapeString(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderHTML renders rows as a minimal HTML fragment: a <table>
// element with one <tr> line per input row and one <td> per cell,
// cell text escaped. Rows are emitted exactly as given, so rows of
// unequal length produce unequal <td> counts. There is no trailing
// newline after the closing tag; callers that print the fragment add
// their own.
func RenderHTML(rows [][]string) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	for _, row := range rows {
		sb.WriteString("  <tr>")
		for _, cell := range row {
			sb.WriteString("<td>")
			sb.WriteString(EscapeString(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>")
	return sb.String()
}
