// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
)

// FormatBytes converts a byte count to a human-readable string with the
// most appropriate unit (B, KB, MB, GB, TB).
//
// Example: FormatBytes(1536) returns "1.5 KB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatUptime renders seconds since boot as the largest applicable unit
// pair: "N days, N hours, N mins", "N hours, N mins", "N mins", or
// "N secs". The head unit is never zero; lower tiers inside a pair may be.
//
// Example: FormatUptime(90061) returns "1 days, 1 hours, 1 mins"
func FormatUptime(seconds uint64) string {
	if seconds < 60 {
		return fmt.Sprintf("%d secs", seconds)
	}
	mins := seconds / 60
	if mins < 60 {
		return fmt.Sprintf("%d mins", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%d hours, %d mins", hours, mins%60)
	}
	days := hours / 24
	return fmt.Sprintf("%d days, %d hours, %d mins", days, hours%24, mins%60)
}

// TruncateString truncates a string to a maximum length and adds an
// ellipsis if needed.
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string with spaces to reach a minimum width.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
