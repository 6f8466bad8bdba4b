// Package main implements the wkreport binary. It is the only
// public-facing entry point to wkreport, since wkreport's Go packages
// are all internal.
package main

import "github.com/lderezinski/wkreport/internal/cli"

// Main entry point for the wkreport binary.
func main() {
	cli.DoCLI()
}
