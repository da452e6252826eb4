package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"--no-logo", "--no-colors", "--gap", "2"})
	require.NoError(t, err)
	assert.True(t, opts.noLogo)
	assert.True(t, opts.noColors)
	assert.False(t, opts.noTiming)
	assert.Equal(t, 2, opts.gap)
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestParseArgsStrayPositional(t *testing.T) {
	_, err := parseArgs([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extra")
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "usage: gofetch")
	assert.Empty(t, stderr.String())
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "gofetch "+version)
	assert.Empty(t, stderr.String())
}

func TestRunUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--frobnicate"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "frobnicate")
	assert.Contains(t, stderr.String(), "--help")
	assert.Empty(t, stdout.String())
}

func TestRunCollects(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-logo", "--no-colors", "--no-timing"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "@", "header line present")
	assert.Contains(t, out, "OS: ")
	assert.Contains(t, out, "Kernel: ")
	assert.Contains(t, out, "Uptime: ")
	assert.NotContains(t, out, "\x1b[", "colors disabled")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 8)
}
