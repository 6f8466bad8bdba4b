package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ProjectFile is the name of the per-directory preferences file.
const ProjectFile = "wkreport.toml"

// ProjectPrefs are defaults read from wkreport.toml in the working
// directory, so a team can pin the filter and format used for a
// repository's status reports.
type ProjectPrefs struct {
	Report ReportPrefs `toml:"report"`
}

// ReportPrefs mirrors the [report] table of wkreport.toml.
type ReportPrefs struct {
	Filter     string `toml:"filter"`
	Format     string `toml:"format"`
	MaxSummary int    `toml:"max-summary"`
}

// LoadProject reads wkreport.toml from the current directory. A
// missing file is not an error; it just yields empty preferences.
func LoadProject() (*ProjectPrefs, error) {
	prefs := &ProjectPrefs{}
	if _, err := os.Stat(ProjectFile); err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return nil, fmt.Errorf("stat %s: %w", ProjectFile, err)
	}
	if _, err := toml.DecodeFile(ProjectFile, prefs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ProjectFile, err)
	}
	return prefs, nil
}
