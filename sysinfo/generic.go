package sysinfo

import "github.com/go-logr/logr"

// genericProvider backs every collector operation with its degraded
// fallback. It is the static binding on targets without a dedicated
// implementation and keeps the aggregator contract total everywhere.
type genericProvider struct {
	log logr.Logger
}

func newGenericProvider(log logr.Logger) *genericProvider {
	return &genericProvider{log: log}
}

func (g *genericProvider) OSName() string              { return Unknown }
func (g *genericProvider) KernelVersion() string       { return Unknown }
func (g *genericProvider) UptimeSeconds() uint64       { return 0 }
func (g *genericProvider) HostModel() string           { return Unknown }
func (g *genericProvider) CPUModel() string            { return Unknown }
func (g *genericProvider) CPUCores() int               { return 1 }
func (g *genericProvider) GPUModel() string            { return Unknown }
func (g *genericProvider) RAMTotalBytes() uint64       { return 0 }
func (g *genericProvider) RAMUsedBytes() uint64        { return 0 }
func (g *genericProvider) DiskTotalBytes() uint64      { return 0 }
func (g *genericProvider) DiskUsedBytes() uint64       { return 0 }
func (g *genericProvider) LocalIP() string             { return Unknown }
func (g *genericProvider) BatteryPercent() (int, bool) { return 0, false }
func (g *genericProvider) PackageCount() int           { return 0 }
func (g *genericProvider) DesktopEnvironment() string  { return Unknown }
func (g *genericProvider) WindowManager() string       { return Unknown }
func (g *genericProvider) Theme() string               { return Unknown }
