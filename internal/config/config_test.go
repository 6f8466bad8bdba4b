package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearJiraEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"JIRA_URL", "JIRA_EMAIL", "JIRA_API_TOKEN", "JIRA_TOKEN"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	clearJiraEnv(t)
	path := writeConfig(t, `
jira:
  url: https://example.atlassian.net/
  email: dev@example.com
  api_token: sekrit
google:
  credentials_file: creds.json
  spreadsheet_id: abc123
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.atlassian.net", cfg.Jira.URL, "trailing slash should be trimmed")
	assert.Equal(t, "dev@example.com", cfg.Jira.Email)
	assert.Equal(t, "sekrit", cfg.Jira.APIToken)
	assert.Equal(t, "creds.json", cfg.Google.CredentialsFile)
	assert.Equal(t, "abc123", cfg.Google.SpreadsheetID)
}

func TestLoadLegacyTokenKey(t *testing.T) {
	clearJiraEnv(t)
	path := writeConfig(t, `
jira:
  url: https://example.atlassian.net
  email: dev@example.com
  token: old-style
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "old-style", cfg.Jira.APIToken)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearJiraEnv(t)
	path := writeConfig(t, `
jira:
  url: https://file.atlassian.net
  email: file@example.com
  api_token: from-file
`)
	t.Setenv("JIRA_URL", "https://env.atlassian.net")
	t.Setenv("JIRA_TOKEN", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.atlassian.net", cfg.Jira.URL)
	assert.Equal(t, "file@example.com", cfg.Jira.Email)
	assert.Equal(t, "from-env", cfg.Jira.APIToken, "JIRA_TOKEN should override the file token")
}

func TestLoadEnvOnly(t *testing.T) {
	clearJiraEnv(t)
	t.Setenv("JIRA_URL", "https://env.atlassian.net")
	t.Setenv("JIRA_EMAIL", "env@example.com")
	t.Setenv("JIRA_API_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://env.atlassian.net", cfg.Jira.URL)
}

func TestLoadValidation(t *testing.T) {
	clearJiraEnv(t)

	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "missing url",
			contents: "jira:\n  email: dev@example.com\n  api_token: x\n",
			wantErr:  "jira url is required",
		},
		{
			name:     "missing email",
			contents: "jira:\n  url: https://example.atlassian.net\n  api_token: x\n",
			wantErr:  "jira email is required",
		},
		{
			name:     "missing token",
			contents: "jira:\n  url: https://example.atlassian.net\n  email: dev@example.com\n",
			wantErr:  "jira api token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	contents := `
[report]
filter = "Team weekly"
format = "docs"
max-summary = 80
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFile), []byte(contents), 0o600))

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	prefs, err := LoadProject()
	require.NoError(t, err)
	assert.Equal(t, "Team weekly", prefs.Report.Filter)
	assert.Equal(t, "docs", prefs.Report.Format)
	assert.Equal(t, 80, prefs.Report.MaxSummary)
}

func TestLoadProjectMissingFile(t *testing.T) {
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	prefs, err := LoadProject()
	require.NoError(t, err)
	assert.Equal(t, &ProjectPrefs{}, prefs)
}
