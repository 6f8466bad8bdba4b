package clipboard

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("pasteboard is available here")
	}

	err := Copy("html", []byte("<p>hi</p>"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = HTMLToRTF("<p>hi</p>")
	assert.ErrorIs(t, err, ErrUnsupported)
}
