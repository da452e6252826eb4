//go:build darwin

// Package sysinfo - macOS-specific collectors. Static facts come from
// sysctl; memory and disk figures come from gopsutil, which wraps the
// host_statistics Mach calls this tool would otherwise need cgo for.
package sysinfo

import (
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sys/unix"
)

type darwinProvider struct {
	log logr.Logger
}

func newPlatformProvider(log logr.Logger) Provider {
	return &darwinProvider{log: log}
}

func (p *darwinProvider) OSName() string {
	if info, err := host.Info(); err == nil && info.PlatformVersion != "" {
		return "macOS " + info.PlatformVersion
	}
	if out, err := runCommand("sw_vers", "-productVersion"); err == nil && out != "" {
		return "macOS " + out
	}
	p.log.V(1).Info("product version unavailable")
	return "macOS"
}

func (p *darwinProvider) KernelVersion() string {
	release, err := unix.Sysctl("kern.osrelease")
	if err != nil {
		p.log.V(1).Info("kern.osrelease failed", "error", err)
		return Unknown
	}
	return release
}

// UptimeSeconds computes now - kern.boottime; a clock skewed past the boot
// timestamp collapses to 0.
func (p *darwinProvider) UptimeSeconds() uint64 {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		p.log.V(1).Info("kern.boottime failed", "error", err)
		return 0
	}
	up := time.Now().Unix() - tv.Sec
	if up < 0 {
		return 0
	}
	return uint64(up)
}

func (p *darwinProvider) HostModel() string {
	model, err := unix.Sysctl("hw.model")
	if err != nil || model == "" {
		return Unknown
	}
	return model
}

func (p *darwinProvider) CPUModel() string {
	if brand, err := unix.Sysctl("machdep.cpu.brand_string"); err == nil && brand != "" {
		return brand
	}
	if brand := cpuid.CPU.BrandName; brand != "" {
		return strings.TrimSpace(brand)
	}
	return Unknown
}

func (p *darwinProvider) CPUCores() int {
	if n, err := unix.SysctlUint32("hw.logicalcpu"); err == nil && n > 0 {
		return int(n)
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

func (p *darwinProvider) GPUModel() string {
	out, err := runCommand("system_profiler", "SPDisplaysDataType")
	if err != nil {
		p.log.V(1).Info("system_profiler unavailable", "error", err)
		return Unknown
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if model, ok := strings.CutPrefix(line, "Chipset Model:"); ok {
			return strings.TrimSpace(model)
		}
	}
	return Unknown
}

func (p *darwinProvider) RAMTotalBytes() uint64 {
	if vm, err := mem.VirtualMemory(); err == nil {
		return vm.Total
	}
	if size, err := unix.SysctlUint64("hw.memsize"); err == nil {
		return size
	}
	return 0
}

func (p *darwinProvider) RAMUsedBytes() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		p.log.V(1).Info("memory stats unavailable", "error", err)
		return 0
	}
	return vm.Used
}

func (p *darwinProvider) DiskTotalBytes() uint64 {
	if du, err := disk.Usage("/"); err == nil {
		return du.Total
	}
	return 0
}

func (p *darwinProvider) DiskUsedBytes() uint64 {
	if du, err := disk.Usage("/"); err == nil {
		return du.Used
	}
	return 0
}

func (p *darwinProvider) LocalIP() string {
	if ip := localIPFromRoute(); ip != "" {
		return ip
	}
	return Unknown
}

// BatteryPercent parses the charge figure out of pmset output. Machines
// without an internal battery (desktops) report absent.
func (p *darwinProvider) BatteryPercent() (int, bool) {
	out, err := runCommand("pmset", "-g", "batt")
	if err != nil || !strings.Contains(out, "InternalBattery") {
		return 0, false
	}
	i := strings.Index(out, "%")
	if i < 0 {
		return 0, false
	}
	// Walk back from the percent sign to the start of the digit run.
	start := i
	for start > 0 && out[start-1] >= '0' && out[start-1] <= '9' {
		start--
	}
	pct, err := strconv.Atoi(out[start:i])
	if err != nil || pct < 0 || pct > 100 {
		return 0, false
	}
	return pct, true
}

// PackageCount sums Homebrew kegs (both prefixes) and /Applications
// bundles. Overlaps are not deduplicated.
func (p *darwinProvider) PackageCount() int {
	count := countDirEntries("/opt/homebrew/Cellar", "")
	count += countDirEntries("/usr/local/Cellar", "")
	count += countDirEntries("/Applications", ".app")
	return count
}

func (p *darwinProvider) DesktopEnvironment() string {
	if de := desktopFromEnv(); de != "" {
		return de
	}
	return "Aqua"
}

func (p *darwinProvider) WindowManager() string {
	return "Quartz Compositor"
}

// Theme reports the system appearance; the AppleInterfaceStyle default
// only exists when dark mode is on.
func (p *darwinProvider) Theme() string {
	if out, err := runCommand("defaults", "read", "-g", "AppleInterfaceStyle"); err == nil && out == "Dark" {
		return "Dark"
	}
	return "Light"
}
