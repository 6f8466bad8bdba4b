// Package api defines the data types that flow between the Jira
// client and the rest of the tool, and the HTTP client they travel
// through.
package api

// Issue is one row of a status report, as fetched from Jira. The
// "pretty" tags name the column headers used for tabular output;
// fields without one are carried along but never printed as columns.
type Issue struct {
	Key      string `json:"key" pretty:"KEY"`
	Summary  string `json:"summary" pretty:"SUMMARY"`
	Status   string `json:"status" pretty:"STATUS"`
	Parent   string `json:"parent,omitempty" pretty:"PARENT"`
	Resolved string `json:"resolved,omitempty" pretty:"RESOLVED"`
	URL      string `json:"url,omitempty"`
}

// Filter identifies a saved Jira search. SearchURL is the REST
// endpoint Jira hands back for running the filter.
type Filter struct {
	ID        string `json:"id" pretty:"ID"`
	Name      string `json:"name" pretty:"NAME"`
	JQL       string `json:"jql,omitempty" pretty:"JQL"`
	SearchURL string `json:"searchUrl,omitempty"`
}
