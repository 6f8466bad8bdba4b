// Package util contains utility functions shared by the other
// packages: fatal and progress output, subprocess helpers, and small
// string and file operations.
package util

import (
	"fmt"
	"os"

	"github.com/lderezinski/wkreport/internal/config"
)

// Die is like fmt.Printf, but writes to stderr, adds a newline, and
// terminates the process.
func Die(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// Panicf is a composition of fmt.Sprintf and panic.
func Panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

// Log writes a message to stderr, keeping stdout clean for report
// payloads that may be piped or copied.
func Log(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}

// Logf is like Log with a format string.
func Logf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}

// ProgressMsg announces a step on stderr unless --quiet was given.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Fprintln(os.Stderr, "-->", msg)
	}
}
