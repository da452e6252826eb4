// Package sysinfo provides cross-platform system information retrieval.
// It defines the snapshot data model, the per-platform provider contract,
// and the aggregator that turns one provider into one immutable snapshot.
package sysinfo

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
)

// Unknown is the sentinel for a textual field whose detection failed or is
// unsupported on the running platform. It is distinct from the empty string:
// every textual snapshot field is always populated, and the formatter decides
// per field whether a sentinel value is displayed or suppressed.
const Unknown = "Unknown"

// Snapshot represents one immutable collection of system information,
// produced once per invocation. Byte sizes are raw bytes; unit conversion
// and percentage math happen at render time only.
type Snapshot struct {
	// Username is the current user's login name.
	Username string

	// Hostname is the machine's network name.
	Hostname string

	// OSName is the full operating system name and version.
	OSName string

	// KernelVersion is the kernel release (or build number on Windows).
	KernelVersion string

	// UptimeSeconds is seconds since boot; 0 when unavailable.
	UptimeSeconds uint64

	// HostModel is the hardware vendor and model.
	HostModel string

	// CPUModel is the processor brand string.
	CPUModel string

	// CPUCores is the logical core count; always at least 1.
	CPUCores int

	// GPUModel is the primary graphics adapter name.
	GPUModel string

	// RAMTotal and RAMUsed are physical memory sizes in bytes; 0 when
	// unavailable. RAMUsed never exceeds RAMTotal.
	RAMTotal uint64
	RAMUsed  uint64

	// DiskTotal and DiskUsed are root/system volume sizes in bytes.
	DiskTotal uint64
	DiskUsed  uint64

	// LocalIP is the address of the default-route interface.
	LocalIP string

	// BatteryPercent is the charge level, valid only when HasBattery is
	// set. The pair distinguishes "no battery" from "0% charged".
	BatteryPercent int
	HasBattery     bool

	// Packages is the summed entry count across all probed package
	// manager locations; 0 means none were found.
	Packages int

	// Shell is the user's command shell.
	Shell string

	// Terminal is the terminal emulator in use.
	Terminal string

	// DesktopEnv and WindowManager describe the graphical session.
	DesktopEnv    string
	WindowManager string

	// Theme is the GTK (or equivalent) widget theme name.
	Theme string

	// Locale is the effective message locale.
	Locale string
}

// Provider is the per-platform collector contract. Every operation is
// total: it returns either a detected value or its documented fallback
// (Unknown, 0, 1 core, absent battery) and never an error. Implementations
// may read small system files or issue bounded OS queries but must not
// write, retry, or block indefinitely.
type Provider interface {
	OSName() string
	KernelVersion() string
	UptimeSeconds() uint64
	HostModel() string
	CPUModel() string
	CPUCores() int
	GPUModel() string
	RAMTotalBytes() uint64
	RAMUsedBytes() uint64
	DiskTotalBytes() uint64
	DiskUsedBytes() uint64
	LocalIP() string
	BatteryPercent() (int, bool)
	PackageCount() int
	DesktopEnvironment() string
	WindowManager() string
	Theme() string
}

// NewProvider returns the collector set for the compile target. The binding
// is static: it is made once and never re-evaluated mid-run. On targets
// without a dedicated implementation the generic fallback set is returned,
// so the aggregator's contract stays total everywhere.
func NewProvider(log logr.Logger) Provider {
	return newPlatformProvider(log)
}

// Collect invokes every provider operation exactly once, in a fixed order
// with no dependencies between operations, and assembles the snapshot.
// Platform-neutral fields (identity, shell, terminal, locale) are gathered
// here from the environment so each platform implements only what differs.
func Collect(p Provider) *Snapshot {
	snap := &Snapshot{
		Username:      username(),
		Hostname:      hostname(),
		OSName:        p.OSName(),
		KernelVersion: p.KernelVersion(),
		UptimeSeconds: p.UptimeSeconds(),
		HostModel:     p.HostModel(),
		CPUModel:      p.CPUModel(),
		CPUCores:      p.CPUCores(),
		GPUModel:      p.GPUModel(),
		RAMTotal:      p.RAMTotalBytes(),
		RAMUsed:       p.RAMUsedBytes(),
		DiskTotal:     p.DiskTotalBytes(),
		DiskUsed:      p.DiskUsedBytes(),
		LocalIP:       p.LocalIP(),
		Packages:      p.PackageCount(),
		Shell:         shellName(),
		Terminal:      terminalName(),
		DesktopEnv:    p.DesktopEnvironment(),
		WindowManager: p.WindowManager(),
		Theme:         p.Theme(),
		Locale:        locale(),
	}
	snap.BatteryPercent, snap.HasBattery = p.BatteryPercent()

	if snap.CPUCores < 1 {
		snap.CPUCores = 1
	}
	if snap.RAMTotal > 0 && snap.RAMUsed > snap.RAMTotal {
		snap.RAMUsed = snap.RAMTotal
	}
	if snap.DiskTotal > 0 && snap.DiskUsed > snap.DiskTotal {
		snap.DiskUsed = snap.DiskTotal
	}
	return snap
}

// username resolves the current user from USER/USERNAME, falling back to
// the os/user database.
func username() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	if cur, err := user.Current(); err == nil && cur.Username != "" {
		// Strip a Windows DOMAIN\ prefix if present.
		name := cur.Username
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return Unknown
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return Unknown
	}
	return h
}

// shellName reports the basename of SHELL, or the ComSpec basename on
// Windows hosts where SHELL is unset.
func shellName() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh)
	}
	if cs := os.Getenv("ComSpec"); cs != "" {
		return filepath.Base(cs)
	}
	return Unknown
}

// terminalName identifies the terminal emulator, first match wins.
func terminalName() string {
	if os.Getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}
	for _, key := range []string{"TERM_PROGRAM", "TERM", "TERMINAL"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return Unknown
}

// locale reports the effective message locale, POSIX priority order.
func locale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return Unknown
}

// desktopFromEnv is the shared fast path for desktop environment
// detection; platform providers fall back to a process-table scan when the
// session variables are unset.
func desktopFromEnv() string {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
