// Package sysinfo - small parsing helpers shared by the platform collectors.
package sysinfo

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxProbeSize bounds every system file read. The files the collectors
// touch (/proc entries, /sys attributes, os-release) are all far smaller.
const maxProbeSize = 64 * 1024

// readSmallFile reads at most maxProbeSize bytes of path.
func readSmallFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxProbeSize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// keyValueLookup scans KEY=value formatted content line by line and returns
// the value of the first matching key with surrounding quotes stripped.
// Missing keys yield an empty string.
func keyValueLookup(content, key string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == key {
			return strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		}
	}
	return ""
}

// colonValueLookup scans "key : value" formatted content (as in
// /proc/cpuinfo and /proc/meminfo) and returns the trimmed value of the
// first matching key.
func colonValueLookup(content, key string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == key {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// ExtractDigits returns the first contiguous run of decimal digits in s,
// or an empty string when s contains none.
func ExtractDigits(s string) string {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}

// extractUint parses the first digit run in s as an unsigned integer,
// returning 0 when no digits are present.
func extractUint(s string) uint64 {
	digits := ExtractDigits(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// countDirEntries counts entries in dir, optionally restricted to names
// with the given suffix. A missing or unreadable directory counts as 0.
func countDirEntries(dir, suffix string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	if suffix == "" {
		return len(entries)
	}
	count := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			count++
		}
	}
	return count
}

// countLines counts non-empty, non-comment lines in the file at path.
// Used for package databases that keep one entry per line.
func countLines(path string) int {
	content, err := readSmallFile(path)
	if err != nil {
		return 0
	}
	count := 0
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			count++
		}
	}
	return count
}
