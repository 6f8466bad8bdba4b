package util

// Truncate shortens s to at most width runes. When truncation happens
// and width leaves room, the last three runes are replaced with "..."
// so the reader can tell text was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
