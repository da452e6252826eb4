package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		osName string
		want   Family
	}{
		{"Ubuntu 24.04 LTS", FamilyLinux},
		{"Arch Linux", FamilyLinux},
		{"Debian GNU/Linux 12 (bookworm)", FamilyLinux},
		{"Fedora Linux 40", FamilyLinux},
		{"Alpine Linux v3.20", FamilyLinux},
		{"Linux", FamilyLinux},
		{"macOS 14.5", FamilyMac},
		{"Windows 11 Pro 23H2", FamilyWindows},
		{"Plan 9", FamilyGeneric},
		{"Unknown", FamilyGeneric},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.osName), "osName=%q", tc.osName)
	}
}

// TestClassifyNeverCrossFamily guards the ordered table: the mac and
// windows names must not fall through to a Linux entry.
func TestClassifyNeverCrossFamily(t *testing.T) {
	assert.NotEqual(t, FamilyLinux, Classify("macOS 14.5"))
	assert.NotEqual(t, FamilyLinux, Classify("Windows 10 Home"))
}

func TestLookup(t *testing.T) {
	for _, osName := range []string{"Ubuntu 24.04", "Arch Linux", "macOS 14.5", "Windows 11", "SomethingElse"} {
		logo := Lookup(osName)
		assert.NotEmpty(t, logo.Lines, "osName=%q", osName)
		assert.NotEmpty(t, logo.Tint, "osName=%q", osName)
	}

	// Unmatched names share the generic placeholder.
	assert.Equal(t, Lookup("Plan 9").Lines, Lookup("Haiku").Lines)
}
