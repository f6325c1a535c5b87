// Package fortune runs an external quote program such as fortune(6).
package fortune

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommand is the program run when none is configured.
const DefaultCommand = "fortune"

// DefaultTimeout bounds how long a quote may take.
const DefaultTimeout = 3 * time.Second

// waitDelay caps how long output pipes are drained after the process is
// killed, in case it left children holding them open.
const waitDelay = 500 * time.Millisecond

// ErrNotFound is returned when the program is not installed.
var ErrNotFound = errors.New("fortune program not found")

// Run executes command with args and returns its trimmed standard output.
// The command is killed when ctx is done.
func Run(ctx context.Context, command string, args ...string) (string, error) {
	if command == "" {
		command = DefaultCommand
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, command)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("run %s: %w", command, ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("run %s: %w: %s", command, err, msg)
		}
		return "", fmt.Errorf("run %s: %w", command, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
