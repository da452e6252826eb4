//go:build !linux && !darwin && !windows

package sysinfo

import "github.com/go-logr/logr"

func newPlatformProvider(log logr.Logger) Provider {
	return newGenericProvider(log)
}
