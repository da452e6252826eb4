package sysinfo

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{8 * 1024 * 1024 * 1024, "8.0 GB"},
	}

	for _, tc := range tests {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Fatalf("FormatBytes(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 secs"},
		{59, "59 secs"},
		{61, "1 mins"},
		{3600, "1 hours, 0 mins"},
		{3661, "1 hours, 1 mins"},
		{90061, "1 days, 1 hours, 1 mins"},
		{2*86400 + 3*3600 + 4*60, "2 days, 3 hours, 4 mins"},
	}

	for _, tc := range tests {
		if got := FormatUptime(tc.in); got != tc.want {
			t.Fatalf("FormatUptime(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Hello World", 8); got != "Hello..." {
		t.Fatalf("TruncateString short failed: got %q", got)
	}
	if got := TruncateString("Hi", 5); got != "Hi" {
		t.Fatalf("TruncateString no-truncate failed: got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
}
