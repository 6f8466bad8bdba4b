// Package clipboard integrates with the macOS pasteboard so formatted
// reports can be pasted straight into Docs and Slides.
package clipboard

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lderezinski/wkreport/internal/util"
)

// ErrUnsupported means the current platform has no pasteboard tooling
// we know how to drive.
var ErrUnsupported = errors.New("clipboard integration requires macOS")

// Copy places data on the pasteboard. prefer selects the flavor
// pbcopy should promote ("rtf", "html", or empty for plain text).
func Copy(prefer string, data []byte) error {
	if runtime.GOOS != "darwin" {
		return ErrUnsupported
	}

	cmd := []string{"pbcopy"}
	if prefer != "" {
		cmd = append(cmd, "-Prefer", prefer)
	}
	return util.RunCmdInput(data, cmd)
}

// HTMLToRTF converts an HTML fragment to RTF via textutil, which
// ships with macOS. RTF pastes into Google Docs with table borders
// and hyperlinks intact, where raw HTML often does not.
func HTMLToRTF(htmlContent string) ([]byte, error) {
	if runtime.GOOS != "darwin" {
		return nil, ErrUnsupported
	}

	tempDir, err := os.MkdirTemp("", "wkreport-html")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tempDir)

	htmlPath := filepath.Join(tempDir, "input.html")
	rtfPath := filepath.Join(tempDir, "output.rtf")

	if err := os.WriteFile(htmlPath, []byte(htmlContent), 0o600); err != nil {
		return nil, err
	}

	if err := util.RunCmd([]string{"textutil", "-convert", "rtf", htmlPath, "-output", rtfPath}); err != nil {
		return nil, err
	}

	return os.ReadFile(rtfPath)
}
