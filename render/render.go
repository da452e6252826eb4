// Package render turns a system snapshot plus display options into output
// lines. It is pure: no I/O, no environment access, deterministic for a
// given snapshot.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"gofetch/ascii"
	"gofetch/sysinfo"
)

// Options controls what Lines emits.
type Options struct {
	// ShowLogo includes the ASCII-art banner keyed to the OS family.
	ShowLogo bool

	// ShowColors wraps labels, header, logo, and the color bar in ANSI
	// escape sequences; false emits plain text.
	ShowColors bool

	// ShowTiming appends a trailing elapsed-time line.
	ShowTiming bool

	// Elapsed is the wall-clock duration reported by the timing line.
	Elapsed time.Duration

	// Gap is the number of spaces between logo and info columns.
	Gap int
}

const (
	labelColor  = "4" // blue
	headerColor = "6" // cyan
	defaultGap  = 4
)

// ansiRegex matches ANSI escape codes for width measurement.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Lines renders the snapshot into an ordered slice of display lines.
func Lines(snap *sysinfo.Snapshot, opts Options) []string {
	r := renderer{opts: opts, profile: termenv.Ascii}
	if opts.ShowColors {
		r.profile = termenv.ANSI
	}

	info := r.infoLines(snap)

	var out []string
	if opts.ShowLogo {
		out = r.sideBySide(ascii.Lookup(snap.OSName), info)
	} else {
		out = info
	}

	if opts.ShowTiming {
		out = append(out, fmt.Sprintf("Elapsed: %s", opts.Elapsed.Round(time.Millisecond)))
	}
	return out
}

type renderer struct {
	opts    Options
	profile termenv.Profile
}

// paint wraps text in the given base-16 color when colors are enabled.
func (r renderer) paint(text, color string) string {
	return termenv.String(text).Foreground(r.profile.Color(color)).String()
}

// infoLines builds the right-hand information column: header, separator,
// field rows, and the color bar.
func (r renderer) infoLines(snap *sysinfo.Snapshot) []string {
	header := fmt.Sprintf("%s@%s",
		r.paint(snap.Username, headerColor), r.paint(snap.Hostname, headerColor))
	separator := strings.Repeat("-", visibleWidth(snap.Username+"@"+snap.Hostname))

	lines := []string{"", header, separator}
	for _, row := range r.fieldRows(snap) {
		lines = append(lines, fmt.Sprintf("%s: %s", r.paint(row.label, labelColor), row.value))
	}

	if r.opts.ShowColors {
		lines = append(lines, "", r.colorBar())
	}
	lines = append(lines, "")
	return lines
}

type fieldRow struct {
	label, value string
}

// fieldRows assembles the display rows. OS, Kernel, Uptime, Shell,
// Terminal, and CPU print unconditionally; every other field is suppressed
// when its value is the unknown sentinel (or, for sizes, a zero total).
func (r renderer) fieldRows(snap *sysinfo.Snapshot) []fieldRow {
	rows := []fieldRow{
		{"OS", snap.OSName},
		{"Kernel", snap.KernelVersion},
	}

	if snap.HostModel != sysinfo.Unknown {
		rows = append(rows, fieldRow{"Host", snap.HostModel})
	}

	rows = append(rows, fieldRow{"Uptime", sysinfo.FormatUptime(snap.UptimeSeconds)})

	if snap.Packages > 0 {
		rows = append(rows, fieldRow{"Packages", strconv.Itoa(snap.Packages)})
	}

	rows = append(rows,
		fieldRow{"Shell", snap.Shell},
		fieldRow{"Terminal", snap.Terminal},
	)

	if snap.DesktopEnv != sysinfo.Unknown {
		rows = append(rows, fieldRow{"DE", snap.DesktopEnv})
	}
	if snap.WindowManager != sysinfo.Unknown {
		rows = append(rows, fieldRow{"WM", snap.WindowManager})
	}
	if snap.Theme != sysinfo.Unknown {
		rows = append(rows, fieldRow{"Theme", snap.Theme})
	}

	rows = append(rows, fieldRow{"CPU", cpuValue(snap)})

	if snap.GPUModel != sysinfo.Unknown {
		rows = append(rows, fieldRow{"GPU", snap.GPUModel})
	}
	if line, ok := usageValue(snap.RAMUsed, snap.RAMTotal); ok {
		rows = append(rows, fieldRow{"Memory", line})
	}
	if line, ok := usageValue(snap.DiskUsed, snap.DiskTotal); ok {
		rows = append(rows, fieldRow{"Disk", line})
	}
	if snap.LocalIP != sysinfo.Unknown {
		rows = append(rows, fieldRow{"Local IP", snap.LocalIP})
	}
	if snap.HasBattery {
		rows = append(rows, fieldRow{"Battery", fmt.Sprintf("%d%%", snap.BatteryPercent)})
	}
	if snap.Locale != sysinfo.Unknown {
		rows = append(rows, fieldRow{"Locale", snap.Locale})
	}
	return rows
}

func cpuValue(snap *sysinfo.Snapshot) string {
	return fmt.Sprintf("%s (%d cores)", snap.CPUModel, snap.CPUCores)
}

// usageValue combines a used/total byte pair into
// "<used> / <total> (<percent>%)". A zero total suppresses the row, which
// also guards the division.
func usageValue(used, total uint64) (string, bool) {
	if total == 0 {
		return "", false
	}
	percent := float64(used) / float64(total) * 100
	return fmt.Sprintf("%s / %s (%.1f%%)",
		sysinfo.FormatBytes(used), sysinfo.FormatBytes(total), percent), true
}

// colorBar renders the 16 basic background colors, a visual reference in
// the tradition of other fetch utilities.
func (r renderer) colorBar() string {
	var bar strings.Builder
	for i := 0; i < 16; i++ {
		bar.WriteString(termenv.String("   ").
			Background(r.profile.Color(strconv.Itoa(i))).String())
	}
	return bar.String()
}

// sideBySide merges the logo and info columns, padding logo lines to a
// common visible width so ANSI escapes do not break alignment.
func (r renderer) sideBySide(logo ascii.Logo, info []string) []string {
	logoWidth := 0
	for _, line := range logo.Lines {
		if w := visibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	gap := r.opts.Gap
	if gap <= 0 {
		gap = defaultGap
	}
	gapSpaces := strings.Repeat(" ", gap)

	maxLines := len(logo.Lines)
	if len(info) > maxLines {
		maxLines = len(info)
	}

	out := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		var logoLine string
		if i < len(logo.Lines) {
			raw := logo.Lines[i]
			logoLine = r.paint(raw, logo.Tint) + strings.Repeat(" ", logoWidth-visibleWidth(raw))
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		infoLine := ""
		if i < len(info) {
			infoLine = info[i]
		}
		out = append(out, strings.TrimRight(logoLine+gapSpaces+infoLine, " "))
	}
	return out
}

// visibleWidth measures display width excluding ANSI escape sequences,
// handling wide runes.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}
