package report

import "time"

// SampleRows returns the fixed demo dataset used by the sample
// command: a header row and one issue row whose RESOLVED cell holds
// the given wall-clock time. Taking the time as an argument keeps the
// output reproducible under test.
func SampleRows(now time.Time) [][]string {
	return [][]string{
		Headers,
		{"ABC-1", "Something", "In Progress", "ABC", now.Format("2006-01-02 15:04")},
	}
}
