package sysinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// probeTimeout caps every external probe the collectors issue, so a single
// misbehaving tool or service cannot stall the whole run.
const probeTimeout = 1500 * time.Millisecond

// runCommand executes a program with a bounded timeout and returns its
// trimmed stdout. Collectors treat any error as "value unavailable".
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
