//go:build linux

// Package sysinfo - Linux-specific collectors. Most values come straight
// from /proc, /sys, and a handful of syscalls; gopsutil backs the paths
// where the primary source can be missing (containers, stripped-down
// images).
package sysinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/unix"
)

type linuxProvider struct {
	log logr.Logger
}

func newPlatformProvider(log logr.Logger) Provider {
	return &linuxProvider{log: log}
}

// OSName parses PRETTY_NAME from os-release. A missing file or key yields
// the generic platform name rather than the sentinel.
func (p *linuxProvider) OSName() string {
	for _, path := range []string{"/etc/os-release", "/usr/lib/os-release"} {
		content, err := readSmallFile(path)
		if err != nil {
			continue
		}
		if name := keyValueLookup(content, "PRETTY_NAME"); name != "" {
			return name
		}
	}
	p.log.V(1).Info("os-release unavailable, using generic name")
	return "Linux"
}

func (p *linuxProvider) KernelVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		p.log.V(1).Info("uname failed", "error", err)
		return Unknown
	}
	return unix.ByteSliceToString(uts.Release[:])
}

// UptimeSeconds reads the float-seconds value from /proc/uptime, truncated
// to whole seconds, with sysinfo(2) as the fallback.
func (p *linuxProvider) UptimeSeconds() uint64 {
	if content, err := readSmallFile("/proc/uptime"); err == nil {
		fields := strings.Fields(content)
		if len(fields) > 0 {
			if up, err := strconv.ParseFloat(fields[0], 64); err == nil && up > 0 {
				return uint64(up)
			}
		}
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil || si.Uptime < 0 {
		p.log.V(1).Info("uptime unavailable")
		return 0
	}
	return uint64(si.Uptime)
}

func (p *linuxProvider) HostModel() string {
	vendor := readDMIAttribute("sys_vendor")
	name := readDMIAttribute("product_name")

	model := strings.TrimSpace(vendor + " " + name)
	if model == "" {
		return Unknown
	}
	return model
}

// readDMIAttribute reads one attribute from the DMI sysfs tree, filtering
// the placeholder strings some firmware vendors ship.
func readDMIAttribute(attr string) string {
	content, err := readSmallFile("/sys/devices/virtual/dmi/id/" + attr)
	if err != nil {
		return ""
	}
	value := strings.TrimSpace(content)
	if strings.Contains(strings.ToLower(value), "to be filled") {
		return ""
	}
	return value
}

func (p *linuxProvider) CPUModel() string {
	if content, err := readSmallFile("/proc/cpuinfo"); err == nil {
		if model := colonValueLookup(content, "model name"); model != "" {
			return model
		}
		// ARM SoCs often expose Hardware instead of a model name.
		if hw := colonValueLookup(content, "Hardware"); hw != "" {
			return hw
		}
	}
	if brand := cpuid.CPU.BrandName; brand != "" {
		return strings.TrimSpace(brand)
	}
	p.log.V(1).Info("cpu model unavailable")
	return Unknown
}

// CPUCores counts processor entries in /proc/cpuinfo. A parse failure
// resolves to the runtime's view, never 0.
func (p *linuxProvider) CPUCores() int {
	count := 0
	if content, err := readSmallFile("/proc/cpuinfo"); err == nil {
		for _, line := range strings.Split(content, "\n") {
			if strings.HasPrefix(line, "processor") {
				count++
			}
		}
	}
	if count == 0 {
		count = runtime.NumCPU()
	}
	if count == 0 {
		count = 1
	}
	return count
}

func (p *linuxProvider) GPUModel() string {
	out, err := runCommand("lspci")
	if err != nil {
		p.log.V(1).Info("lspci unavailable", "error", err)
		return Unknown
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") {
			continue
		}
		if i := strings.Index(line, "controller:"); i >= 0 {
			return strings.TrimSpace(line[i+len("controller:"):])
		}
	}
	return Unknown
}

func (p *linuxProvider) RAMTotalBytes() uint64 {
	total, _, ok := p.meminfoKB()
	if !ok {
		if vm, err := mem.VirtualMemory(); err == nil {
			return vm.Total
		}
		return 0
	}
	return total * 1024
}

// RAMUsedBytes prefers MemAvailable (used = total - available) and falls
// back to subtracting free+buffers+cached, clamped at zero.
func (p *linuxProvider) RAMUsedBytes() uint64 {
	total, reclaimable, ok := p.meminfoKB()
	if !ok {
		if vm, err := mem.VirtualMemory(); err == nil {
			return vm.Used
		}
		return 0
	}
	if reclaimable > total {
		return 0
	}
	return (total - reclaimable) * 1024
}

// meminfoKB parses /proc/meminfo and returns total memory plus the best
// estimate of reclaimable memory, both in kB. The second value is
// MemAvailable when the kernel exports it, otherwise
// MemFree+Buffers+Cached.
func (p *linuxProvider) meminfoKB() (total, reclaimable uint64, ok bool) {
	content, err := readSmallFile("/proc/meminfo")
	if err != nil {
		p.log.V(1).Info("meminfo unavailable", "error", err)
		return 0, 0, false
	}

	total = extractUint(colonValueLookup(content, "MemTotal"))
	if total == 0 {
		return 0, 0, false
	}

	if avail := colonValueLookup(content, "MemAvailable"); avail != "" {
		return total, extractUint(avail), true
	}

	reclaimable = extractUint(colonValueLookup(content, "MemFree")) +
		extractUint(colonValueLookup(content, "Buffers")) +
		extractUint(colonValueLookup(content, "Cached"))
	return total, reclaimable, true
}

func (p *linuxProvider) DiskTotalBytes() uint64 {
	var st unix.Statfs_t
	if err := unix.Statfs("/", &st); err == nil {
		return st.Blocks * uint64(st.Bsize)
	}
	if du, err := disk.Usage("/"); err == nil {
		return du.Total
	}
	p.log.V(1).Info("disk stats unavailable")
	return 0
}

func (p *linuxProvider) DiskUsedBytes() uint64 {
	var st unix.Statfs_t
	if err := unix.Statfs("/", &st); err == nil {
		return (st.Blocks - st.Bfree) * uint64(st.Bsize)
	}
	if du, err := disk.Usage("/"); err == nil {
		return du.Used
	}
	return 0
}

func (p *linuxProvider) LocalIP() string {
	if ip := localIPFromRoute(); ip != "" {
		return ip
	}
	p.log.V(1).Info("no default-route address")
	return Unknown
}

// BatteryPercent reads the capacity attribute of the first battery-class
// power supply. Desktops without one report absent, not 0%.
func (p *linuxProvider) BatteryPercent() (int, bool) {
	matches, err := filepath.Glob("/sys/class/power_supply/BAT*/capacity")
	if err != nil || len(matches) == 0 {
		return 0, false
	}
	content, err := readSmallFile(matches[0])
	if err != nil {
		return 0, false
	}
	digits := ExtractDigits(content)
	if digits == "" {
		return 0, false
	}
	pct, err := strconv.Atoi(digits)
	if err != nil || pct < 0 || pct > 100 {
		return 0, false
	}
	return pct, true
}

// PackageCount sums entries across every package manager location that
// exists. Overlapping managers (a package in both dpkg and snap) are
// intentionally double-counted; managers track distinct installations.
func (p *linuxProvider) PackageCount() int {
	count := countDirEntries("/var/lib/dpkg/info", ".list")
	count += countDirEntries("/var/lib/pacman/local", "")
	count += countDirEntries("/var/lib/snapd/snaps", ".snap")
	count += countDirEntries("/var/lib/flatpak/app", "")
	count += countLines("/etc/apk/world")
	return count
}

// desktopProcessTable maps well-known session process names to display
// names, highest priority first.
var desktopProcessTable = []struct{ proc, name string }{
	{"gnome-shell", "GNOME"},
	{"plasmashell", "KDE Plasma"},
	{"xfce4-session", "Xfce"},
	{"cinnamon", "Cinnamon"},
	{"mate-session", "MATE"},
	{"lxqt-session", "LXQt"},
	{"lxsession", "LXDE"},
	{"budgie-desktop", "Budgie"},
}

// wmProcessTable maps window manager / compositor process names to display
// names, highest priority first.
var wmProcessTable = []struct{ proc, name string }{
	{"mutter", "Mutter"},
	{"kwin_wayland", "KWin"},
	{"kwin_x11", "KWin"},
	{"xfwm4", "Xfwm4"},
	{"sway", "Sway"},
	{"hyprland", "Hyprland"},
	{"i3", "i3"},
	{"bspwm", "bspwm"},
	{"openbox", "Openbox"},
	{"awesome", "awesome"},
	{"dwm", "dwm"},
}

func (p *linuxProvider) DesktopEnvironment() string {
	if de := desktopFromEnv(); de != "" {
		return de
	}
	return p.scanProcessTable(desktopProcessTable)
}

func (p *linuxProvider) WindowManager() string {
	return p.scanProcessTable(wmProcessTable)
}

// scanProcessTable walks the running-process list once and returns the
// display name of the first table entry with a live process, honoring
// table order over process order.
func (p *linuxProvider) scanProcessTable(table []struct{ proc, name string }) string {
	procs, err := process.Processes()
	if err != nil {
		p.log.V(1).Info("process scan failed", "error", err)
		return Unknown
	}

	running := make(map[string]bool, len(procs))
	for _, pr := range procs {
		if name, err := pr.Name(); err == nil {
			running[strings.ToLower(name)] = true
		}
	}
	for _, entry := range table {
		if running[entry.proc] {
			return entry.name
		}
	}
	return Unknown
}

// Theme reads the GTK3 theme name from the user's settings.ini.
func (p *linuxProvider) Theme() string {
	home := os.Getenv("HOME")
	if home == "" {
		return Unknown
	}
	content, err := readSmallFile(filepath.Join(home, ".config", "gtk-3.0", "settings.ini"))
	if err != nil {
		return Unknown
	}
	if theme := keyValueLookup(content, "gtk-theme-name"); theme != "" {
		return theme
	}
	return Unknown
}
