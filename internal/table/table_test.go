package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicateHeaders(t *testing.T) {
	assert.Panics(t, func() { New("KEY", "KEY") })
}

func TestAddRowArity(t *testing.T) {
	tbl := New("KEY", "STATUS")
	tbl.AddRow("ABC-1", "Done")
	assert.Panics(t, func() { tbl.AddRow("ABC-2") })
	assert.Panics(t, func() { tbl.AddRow("ABC-2", "Done", "extra") })
}

func TestSortBy(t *testing.T) {
	tbl := New("KEY", "STATUS")
	tbl.AddRow("ABC-3", "Done")
	tbl.AddRow("ABC-1", "In Progress")
	tbl.AddRow("ABC-2", "Blocked")

	tbl.SortBy("KEY")
	assert.Equal(t, [][]string{
		{"KEY", "STATUS"},
		{"ABC-1", "In Progress"},
		{"ABC-2", "Blocked"},
		{"ABC-3", "Done"},
	}, tbl.Rows())

	assert.Panics(t, func() { tbl.SortBy("NOPE") })
}

func TestFromStructs(t *testing.T) {
	type row struct {
		Key     string   `pretty:"KEY"`
		Summary string   `pretty:"SUMMARY"`
		Parent  string   `pretty:"PARENT"`
		Labels  []string `pretty:"LABELS"`
		URL     string
	}

	rows := []row{
		{Key: "ABC-1", Summary: "First", Labels: []string{"infra", "q3"}, URL: "https://example.com/1"},
		{Key: "ABC-2", Summary: "Second", URL: "https://example.com/2"},
	}

	tbl := FromStructs(rows)
	require.Equal(t, []string{"KEY", "SUMMARY", "LABELS"}, tbl.headers,
		"untagged URL and all-empty PARENT should be dropped")
	assert.Equal(t, [][]string{
		{"ABC-1", "First", "infra, q3"},
		{"ABC-2", "Second", ""},
	}, tbl.rows)
}

func TestRowsPrependsHeaders(t *testing.T) {
	tbl := New("KEY")
	tbl.AddRow("ABC-1")
	assert.Equal(t, [][]string{{"KEY"}, {"ABC-1"}}, tbl.Rows())
}
