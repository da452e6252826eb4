package sysinfo

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollectGenericTotality verifies the aggregator contract on the
// fallback provider: every field gets a value, never an error or a hole.
func TestCollectGenericTotality(t *testing.T) {
	snap := Collect(newGenericProvider(logr.Discard()))
	require.NotNil(t, snap)

	assert.Equal(t, Unknown, snap.OSName)
	assert.Equal(t, Unknown, snap.KernelVersion)
	assert.Equal(t, Unknown, snap.HostModel)
	assert.Equal(t, Unknown, snap.CPUModel)
	assert.Equal(t, Unknown, snap.GPUModel)
	assert.Equal(t, Unknown, snap.LocalIP)
	assert.Equal(t, Unknown, snap.DesktopEnv)
	assert.Equal(t, Unknown, snap.WindowManager)
	assert.Equal(t, Unknown, snap.Theme)

	assert.Zero(t, snap.UptimeSeconds)
	assert.Zero(t, snap.RAMTotal)
	assert.Zero(t, snap.DiskTotal)
	assert.Zero(t, snap.Packages)
	assert.False(t, snap.HasBattery)
	assert.Equal(t, 1, snap.CPUCores)

	// Identity fields come from the ambient environment and are always
	// populated, sentinel at worst.
	assert.NotEmpty(t, snap.Username)
	assert.NotEmpty(t, snap.Hostname)
	assert.NotEmpty(t, snap.Shell)
	assert.NotEmpty(t, snap.Terminal)
	assert.NotEmpty(t, snap.Locale)
}

// skewedProvider reports used sizes larger than totals, as a racing or
// misparsed source could.
type skewedProvider struct {
	*genericProvider
}

func (skewedProvider) RAMTotalBytes() uint64  { return 1024 }
func (skewedProvider) RAMUsedBytes() uint64   { return 4096 }
func (skewedProvider) DiskTotalBytes() uint64 { return 10 }
func (skewedProvider) DiskUsedBytes() uint64  { return 20 }
func (skewedProvider) CPUCores() int          { return 0 }

func TestCollectClampsSkewedValues(t *testing.T) {
	snap := Collect(skewedProvider{newGenericProvider(logr.Discard())})

	assert.Equal(t, snap.RAMTotal, snap.RAMUsed, "used memory clamps to total")
	assert.Equal(t, snap.DiskTotal, snap.DiskUsed, "used disk clamps to total")
	assert.Equal(t, 1, snap.CPUCores, "core count never drops below 1")
}

func TestUsernamePriority(t *testing.T) {
	t.Setenv("USER", "alice")
	t.Setenv("USERNAME", "bob")
	assert.Equal(t, "alice", username())

	t.Setenv("USER", "")
	assert.Equal(t, "bob", username())
}

func TestShellNameBasename(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	assert.Equal(t, "zsh", shellName())
}

func TestTerminalNamePriority(t *testing.T) {
	t.Setenv("WT_SESSION", "")
	t.Setenv("TERM_PROGRAM", "WezTerm")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERMINAL", "")
	assert.Equal(t, "WezTerm", terminalName())

	t.Setenv("TERM_PROGRAM", "")
	assert.Equal(t, "xterm-256color", terminalName())

	t.Setenv("WT_SESSION", "some-guid")
	assert.Equal(t, "Windows Terminal", terminalName())
}

func TestLocalePriority(t *testing.T) {
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	t.Setenv("LC_MESSAGES", "fr_FR.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "de_DE.UTF-8", locale())

	t.Setenv("LC_ALL", "")
	assert.Equal(t, "fr_FR.UTF-8", locale())

	t.Setenv("LC_MESSAGES", "")
	assert.Equal(t, "en_US.UTF-8", locale())

	t.Setenv("LANG", "")
	assert.Equal(t, Unknown, locale())
}

func TestDesktopFromEnvPriority(t *testing.T) {
	t.Setenv("XDG_CURRENT_DESKTOP", "GNOME")
	t.Setenv("DESKTOP_SESSION", "plasma")
	assert.Equal(t, "GNOME", desktopFromEnv())

	t.Setenv("XDG_CURRENT_DESKTOP", "")
	assert.Equal(t, "plasma", desktopFromEnv())

	t.Setenv("DESKTOP_SESSION", "")
	assert.Equal(t, "", desktopFromEnv())
}
