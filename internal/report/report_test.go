package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lderezinski/wkreport/internal/api"
)

func TestRows(t *testing.T) {
	issues := []api.Issue{
		{Key: "ABC-1", Summary: "Fix the thing", Status: "In Progress", Parent: " ABC ", Resolved: ""},
		{Key: "ABC-2", Summary: "Ship it", Status: "Done", Resolved: "2026-02-06 09:05"},
	}

	rows := Rows(issues, 0)
	require.Len(t, rows, 3)
	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, []string{"ABC-1", "ABC / Fix the thing", "In Progress", "ABC", ""}, rows[1])
	assert.Equal(t, []string{"ABC-2", "Ship it", "Done", "", "2026-02-06 09:05"}, rows[2])
}

func TestRowsTruncatesSummaries(t *testing.T) {
	issues := []api.Issue{
		{Key: "ABC-1", Summary: "This summary is much too long to fit", Parent: "ABC"},
	}

	rows := Rows(issues, 20)
	summary := rows[1][1]
	assert.Equal(t, "ABC / This summar...", summary)
	assert.LessOrEqual(t, len([]rune(summary)), 20)
}

func TestTabDelimited(t *testing.T) {
	issues := []api.Issue{
		{Key: "ABC-1", Summary: "Fix the thing", Status: "In Progress", Parent: "ABC"},
	}

	expected := "KEY\tSUMMARY\tSTATUS\tPARENT\tRESOLVED\n" +
		"ABC-1\tABC / Fix the thing\tIn Progress\tABC\t\n"
	assert.Equal(t, expected, TabDelimited(issues, 0))
}

func TestTableMatchesRows(t *testing.T) {
	issues := []api.Issue{
		{Key: "ABC-1", Summary: "Fix the thing", Status: "In Progress"},
	}
	tbl := Table(issues, 0)
	assert.Equal(t, Rows(issues, 0), tbl.Rows())
}

func TestSort(t *testing.T) {
	issues := []api.Issue{
		{Key: "abc-9", Parent: "XYZ", Status: "Done"},
		{Key: "ABC-3", Parent: "", Status: "in progress"},
		{Key: "ABC-1", Parent: "xyz", Status: "Blocked"},
		{Key: "ABC-2", Parent: "", Status: "In Progress"},
	}

	Sort(issues)

	keys := []string{}
	for _, issue := range issues {
		keys = append(keys, issue.Key)
	}
	assert.Equal(t, []string{"ABC-2", "ABC-3", "ABC-1", "abc-9"}, keys,
		"expected parent, then status, then key, case-insensitively")
}

func TestSortByStatus(t *testing.T) {
	issues := []api.Issue{
		{Key: "ABC-2", Status: "In Progress"},
		{Key: "ABC-3", Status: "done"},
		{Key: "ABC-1", Status: "Done"},
	}

	SortByStatus(issues)

	keys := []string{}
	for _, issue := range issues {
		keys = append(keys, issue.Key)
	}
	assert.Equal(t, []string{"ABC-1", "ABC-3", "ABC-2"}, keys)
}

func TestJSONRoundTrips(t *testing.T) {
	issues := []api.Issue{
		{Key: "ABC-1", Summary: "Fix the thing", Status: "Done", Resolved: "2026-02-06 09:05"},
	}

	payload, err := JSON(issues)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"key": "ABC-1"`)
	assert.NotContains(t, string(payload), `"parent"`, "empty fields should be omitted")

	var decoded []api.Issue
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, issues, decoded)
}

func TestSampleRows(t *testing.T) {
	now := time.Date(2026, 2, 6, 9, 5, 0, 0, time.Local)

	rows := SampleRows(now)
	require.Len(t, rows, 2)
	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, []string{"ABC-1", "Something", "In Progress", "ABC", "2026-02-06 09:05"}, rows[1])
}
