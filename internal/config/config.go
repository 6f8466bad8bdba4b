package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// DefaultPath is where Load looks for the credentials file when the
// --config option is not given.
const DefaultPath = "cfg/config.yaml"

// Config models the user-level configuration file.
type Config struct {
	Jira   JiraConfig   `yaml:"jira"`
	Google GoogleConfig `yaml:"google"`
}

// JiraConfig contains connection details for the Jira instance.
type JiraConfig struct {
	URL      string `yaml:"url"`
	Email    string `yaml:"email"`
	APIToken string `yaml:"api_token"`
	// Token is an older spelling of api_token, still accepted.
	Token string `yaml:"token"`
}

// GoogleConfig carries the optional Google API settings used when a
// report is pushed to a spreadsheet.
type GoogleConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
}

// Load reads configuration from the provided path and applies
// environment overrides. The file may be absent as long as the
// environment supplies the Jira connection details.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg := Config{}
	contents, err := os.ReadFile(absPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Fine; the environment may carry everything we need.
	default:
		return nil, fmt.Errorf("open config file: %w", err)
	}

	if cfg.Jira.APIToken == "" {
		cfg.Jira.APIToken = cfg.Jira.Token
	}
	applyJiraEnvOverrides(&cfg.Jira)
	cfg.Jira.URL = strings.TrimRight(cfg.Jira.URL, "/")

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyJiraEnvOverrides(jira *JiraConfig) {
	if v := strings.TrimSpace(os.Getenv("JIRA_URL")); v != "" {
		jira.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("JIRA_EMAIL")); v != "" {
		jira.Email = v
	}
	if v := strings.TrimSpace(os.Getenv("JIRA_API_TOKEN")); v != "" {
		jira.APIToken = v
	}
	if v := strings.TrimSpace(os.Getenv("JIRA_TOKEN")); v != "" {
		jira.APIToken = v
	}
}

func validate(cfg *Config) error {
	if cfg.Jira.URL == "" {
		return errors.New("jira url is required (cfg/config.yaml or JIRA_URL)")
	}
	if cfg.Jira.Email == "" {
		return errors.New("jira email is required (cfg/config.yaml or JIRA_EMAIL)")
	}
	if cfg.Jira.APIToken == "" {
		return errors.New("jira api token is required (cfg/config.yaml or JIRA_API_TOKEN)")
	}
	return nil
}
