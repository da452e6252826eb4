//go:build windows

// Package sysinfo - Windows-specific collectors. Values come from the
// registry and a handful of kernel32/iphlpapi calls through lazily loaded
// DLLs; nothing here spawns a subprocess.
package sysinfo

import (
	"encoding/binary"
	"net"
	"os"
	"runtime"
	"strconv"
	"strings"
	"unsafe"

	"github.com/go-logr/logr"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modiphlpapi = windows.NewLazySystemDLL("iphlpapi.dll")

	procGetTickCount64       = modkernel32.NewProc("GetTickCount64")
	procGlobalMemoryStatusEx = modkernel32.NewProc("GlobalMemoryStatusEx")
	procGetSystemPowerStatus = modkernel32.NewProc("GetSystemPowerStatus")
	procGetBestInterface     = modiphlpapi.NewProc("GetBestInterface")
	procRtlGetVersion        = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// memoryStatusEx mirrors the Windows MEMORYSTATUSEX structure.
type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

// systemPowerStatus mirrors the Windows SYSTEM_POWER_STATUS structure.
type systemPowerStatus struct {
	acLineStatus        byte
	batteryFlag         byte
	batteryLifePercent  byte
	systemStatusFlag    byte
	batteryLifeTime     uint32
	batteryFullLifeTime uint32
}

type windowsProvider struct {
	log logr.Logger
}

func newPlatformProvider(log logr.Logger) Provider {
	return &windowsProvider{log: log}
}

// OSName reads the product name and display version from the registry.
// RtlGetVersion disambiguates Windows 10 from 11: builds at or above 22000
// still carry a "Windows 10" ProductName in the registry.
func (p *windowsProvider) OSName() string {
	product := registryString(registry.LOCAL_MACHINE, currentVersionKey, "ProductName")
	if product == "" {
		p.log.V(1).Info("ProductName registry read failed")
		return "Windows"
	}

	if build := rtlGetBuildNumber(); build >= 22000 &&
		strings.Contains(strings.ToLower(product), "windows 10") {
		product = strings.Replace(product, "Windows 10", "Windows 11", 1)
	}

	if display := registryString(registry.LOCAL_MACHINE, currentVersionKey, "DisplayVersion"); display != "" {
		return product + " " + display
	}
	return product
}

func (p *windowsProvider) KernelVersion() string {
	build := registryString(registry.LOCAL_MACHINE, currentVersionKey, "CurrentBuild")
	if build == "" {
		return Unknown
	}
	return "Build " + build
}

func (p *windowsProvider) UptimeSeconds() uint64 {
	ret, _, _ := procGetTickCount64.Call()
	if ret == 0 {
		p.log.V(1).Info("GetTickCount64 failed")
		return 0
	}
	return uint64(ret) / 1000
}

func (p *windowsProvider) HostModel() string {
	paths := []string{
		`SYSTEM\CurrentControlSet\Control\SystemInformation`,
		`HARDWARE\DESCRIPTION\System\BIOS`,
	}
	for _, path := range paths {
		manufacturer := registryString(registry.LOCAL_MACHINE, path, "SystemManufacturer")
		model := registryString(registry.LOCAL_MACHINE, path, "SystemProductName")
		combined := strings.TrimSpace(manufacturer + " " + model)
		if combined != "" {
			return combined
		}
	}
	return Unknown
}

func (p *windowsProvider) CPUModel() string {
	if name := registryString(registry.LOCAL_MACHINE,
		`HARDWARE\DESCRIPTION\System\CentralProcessor\0`, "ProcessorNameString"); name != "" {
		return strings.TrimSpace(name)
	}
	if id := os.Getenv("PROCESSOR_IDENTIFIER"); id != "" {
		return id
	}
	if brand := cpuid.CPU.BrandName; brand != "" {
		return strings.TrimSpace(brand)
	}
	return Unknown
}

func (p *windowsProvider) CPUCores() int {
	if env := os.Getenv("NUMBER_OF_PROCESSORS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// GPUModel enumerates the display adapter class keys, skipping the
// Microsoft Basic Display fallback driver.
func (p *windowsProvider) GPUModel() string {
	const classKey = `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, classKey,
		registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		p.log.V(1).Info("video class key unavailable", "error", err)
		return Unknown
	}
	defer k.Close()

	subkeys, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return Unknown
	}
	for _, subkey := range subkeys {
		desc := registryString(registry.LOCAL_MACHINE, classKey+`\`+subkey, "DriverDesc")
		if desc != "" && !strings.Contains(strings.ToLower(desc), "microsoft basic") {
			return desc
		}
	}
	return Unknown
}

func (p *windowsProvider) RAMTotalBytes() uint64 {
	mem, ok := p.memoryStatus()
	if !ok {
		return 0
	}
	return mem.ullTotalPhys
}

func (p *windowsProvider) RAMUsedBytes() uint64 {
	mem, ok := p.memoryStatus()
	if !ok || mem.ullAvailPhys > mem.ullTotalPhys {
		return 0
	}
	return mem.ullTotalPhys - mem.ullAvailPhys
}

func (p *windowsProvider) memoryStatus() (memoryStatusEx, bool) {
	var mem memoryStatusEx
	mem.dwLength = uint32(unsafe.Sizeof(mem))
	ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&mem)))
	if ret == 0 {
		p.log.V(1).Info("GlobalMemoryStatusEx failed")
		return memoryStatusEx{}, false
	}
	return mem, true
}

func (p *windowsProvider) DiskTotalBytes() uint64 {
	total, _, ok := p.diskSpace()
	if !ok {
		return 0
	}
	return total
}

func (p *windowsProvider) DiskUsedBytes() uint64 {
	total, free, ok := p.diskSpace()
	if !ok || free > total {
		return 0
	}
	return total - free
}

// diskSpace queries the system drive via GetDiskFreeSpaceEx.
func (p *windowsProvider) diskSpace() (total, free uint64, ok bool) {
	root := `C:\`
	if sd := os.Getenv("SystemDrive"); sd != "" {
		root = sd + `\`
	}
	drive, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return 0, 0, false
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(drive, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		p.log.V(1).Info("GetDiskFreeSpaceEx failed", "drive", root, "error", err)
		return 0, 0, false
	}
	return totalBytes, totalFreeBytes, true
}

// LocalIP resolves the default-route interface via GetBestInterface and
// returns its first IPv4 address, with the generic UDP-dial lookup as the
// fallback.
func (p *windowsProvider) LocalIP() string {
	if ip := p.bestInterfaceIP(); ip != "" {
		return ip
	}
	if ip := localIPFromRoute(); ip != "" {
		return ip
	}
	return Unknown
}

func (p *windowsProvider) bestInterfaceIP() string {
	destIP := net.ParseIP("8.8.8.8").To4()
	if destIP == nil {
		return ""
	}
	// GetBestInterface takes the destination as a network byte order DWORD.
	dest := binary.BigEndian.Uint32(destIP)

	var ifIndex uint32
	ret, _, _ := procGetBestInterface.Call(uintptr(dest), uintptr(unsafe.Pointer(&ifIndex)))
	if ret != 0 {
		return ""
	}

	ifi, err := net.InterfaceByIndex(int(ifIndex))
	if err != nil {
		return ""
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return ""
	}
	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
			return ip4.String()
		}
	}
	return ""
}

// BatteryPercent queries GetSystemPowerStatus. Flag bit 128 marks systems
// with no battery; percent 255 means the value is unknown.
func (p *windowsProvider) BatteryPercent() (int, bool) {
	var status systemPowerStatus
	ret, _, _ := procGetSystemPowerStatus.Call(uintptr(unsafe.Pointer(&status)))
	if ret == 0 {
		return 0, false
	}
	if status.batteryFlag&128 != 0 || status.batteryLifePercent > 100 {
		return 0, false
	}
	return int(status.batteryLifePercent), true
}

// PackageCount sums entries of the 64-bit and 32-bit uninstall registry
// keys. Programs registered in both are counted twice, matching how the
// installed-programs lists present them.
func (p *windowsProvider) PackageCount() int {
	count := 0
	paths := []string{
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
	}
	for _, path := range paths {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		subkeys, err := k.ReadSubKeyNames(-1)
		k.Close()
		if err != nil {
			continue
		}
		count += len(subkeys)
	}
	return count
}

func (p *windowsProvider) DesktopEnvironment() string {
	if de := desktopFromEnv(); de != "" {
		return de
	}
	return "Fluent"
}

func (p *windowsProvider) WindowManager() string {
	return "Desktop Window Manager"
}

func (p *windowsProvider) Theme() string {
	k, err := registry.OpenKey(registry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Themes\Personalize`, registry.QUERY_VALUE)
	if err != nil {
		return Unknown
	}
	defer k.Close()

	light, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return Unknown
	}
	if light == 0 {
		return "Dark"
	}
	return "Light"
}

// registryString reads one string value, absorbing every failure into an
// empty result.
func registryString(key registry.Key, path, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return value
}

// rtlGetBuildNumber calls ntdll.RtlGetVersion, which reports the true
// build number regardless of manifest-based version lying. Returns 0 on
// failure.
func rtlGetBuildNumber() uint32 {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))
	ret, _, _ := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		return 0
	}
	return v.dwBuildNumber
}
