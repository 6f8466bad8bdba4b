package util

import (
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

func quoteCmd(cmd []string) string {
	cleanedCmd := make([]string, len(cmd))
	copy(cleanedCmd, cmd)
	for i := range cmd {
		if strings.ContainsRune(cmd[i], '\n') {
			cleanedCmd[i] = "<multiline payload>"
		}
	}
	return shellquote.Join(cleanedCmd...)
}

// RunCmd runs a command with its stdout and stderr routed to stderr,
// keeping stdout clean for report payloads.
func RunCmd(cmd []string) error {
	ProgressMsg(quoteCmd(cmd))
	command := exec.Command(cmd[0], cmd[1:]...)
	command.Stdout = os.Stderr
	command.Stderr = os.Stderr
	return command.Run()
}

// RunCmdInput is RunCmd with the given bytes fed to the command's
// stdin.
func RunCmdInput(input []byte, cmd []string) error {
	ProgressMsg(quoteCmd(cmd))
	command := exec.Command(cmd[0], cmd[1:]...)
	command.Stdin = strings.NewReader(string(input))
	command.Stderr = os.Stderr
	return command.Run()
}
