package util

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// TryWriteAtomic tries to write the given file atomically, but if that
// fails (for example because the temporary file cannot be renamed onto
// a different filesystem) it falls back to a plain write.
func TryWriteAtomic(filename string, contents []byte) {
	if err1 := atomic.WriteFile(filename, bytes.NewReader(contents)); err1 != nil {
		if err2 := os.WriteFile(filename, contents, 0o666); err2 != nil {
			Die("write %s: %s; on non-atomic retry: %s", filename, err1, err2)
		}
	}
}
