package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"meminfo line", "MemTotal:       16384000 kB", "16384000"},
		{"no digits", "no numbers here", ""},
		{"empty", "", ""},
		{"leading digits", "42 things", "42"},
		{"trailing digits", "battery at 87", "87"},
		{"first run wins", "12 then 34", "12"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractDigits(tc.in))
		})
	}
}

func TestExtractUint(t *testing.T) {
	assert.Equal(t, uint64(16384000), extractUint("MemTotal:       16384000 kB"))
	assert.Equal(t, uint64(0), extractUint("no digits"))
}

func TestKeyValueLookup(t *testing.T) {
	content := `# os-release
NAME="Ubuntu"
PRETTY_NAME="Ubuntu 24.04 LTS"
VERSION_ID='24.04'
PRETTY_NAME="second match loses"
BARE=plain
`

	assert.Equal(t, "Ubuntu 24.04 LTS", keyValueLookup(content, "PRETTY_NAME"))
	assert.Equal(t, "24.04", keyValueLookup(content, "VERSION_ID"))
	assert.Equal(t, "plain", keyValueLookup(content, "BARE"))
	assert.Equal(t, "", keyValueLookup(content, "MISSING"))
}

func TestColonValueLookup(t *testing.T) {
	content := `processor	: 0
model name	: AMD Ryzen 7 5800X 8-Core Processor
processor	: 1
model name	: second entry loses
`

	assert.Equal(t, "AMD Ryzen 7 5800X 8-Core Processor", colonValueLookup(content, "model name"))
	assert.Equal(t, "", colonValueLookup(content, "flags"))
}

func TestCountDirEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bash.list", "curl.list", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	assert.Equal(t, 3, countDirEntries(dir, ""))
	assert.Equal(t, 2, countDirEntries(dir, ".list"))
	assert.Equal(t, 0, countDirEntries(filepath.Join(dir, "missing"), ""))
}

func TestCountLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world")
	require.NoError(t, os.WriteFile(path, []byte("busybox\n\n# comment\nmusl\n"), 0o644))

	assert.Equal(t, 2, countLines(path))
	assert.Equal(t, 0, countLines(filepath.Join(dir, "missing")))
}

func TestReadSmallFileBounded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big")
	require.NoError(t, os.WriteFile(path, make([]byte, maxProbeSize+4096), 0o644))

	content, err := readSmallFile(path)
	require.NoError(t, err)
	assert.Len(t, content, maxProbeSize)
}
