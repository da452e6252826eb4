// Package main provides the gofetch command-line tool: it collects a
// one-shot snapshot of host information and displays it next to an ASCII
// art logo keyed to the detected operating system.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"gofetch/render"
	"gofetch/sysinfo"
)

const version = "1.0.0"

const usageText = `usage: gofetch [options]

Display system information alongside an ASCII-art logo.

options:
  -h, --help       print this help and exit
  -v, --version    print version information and exit
      --no-logo    suppress the ASCII-art banner
      --no-colors  suppress ANSI color escapes
      --no-timing  suppress the trailing elapsed-time line
      --gap N      spaces between logo and info columns (default 4)
      --debug      log collector fallbacks to stderr
`

type cliOptions struct {
	help     bool
	version  bool
	noLogo   bool
	noColors bool
	noTiming bool
	debug    bool
	gap      int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entry point. Argument errors report the offending
// token and exit 1 before any collection happens; help and version paths
// also collect nothing.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "gofetch: %v\nsee 'gofetch --help' for usage\n", err)
		return 1
	}

	switch {
	case opts.help:
		fmt.Fprint(stdout, usageText)
		return 0
	case opts.version:
		fmt.Fprintf(stdout, "gofetch %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		return 0
	}

	log := logr.Discard()
	if opts.debug {
		if zl, zerr := zap.NewDevelopment(); zerr == nil {
			defer func() { _ = zl.Sync() }()
			log = zapr.NewLogger(zl)
		}
	}

	start := time.Now()
	snap := sysinfo.Collect(sysinfo.NewProvider(log))

	lines := render.Lines(snap, render.Options{
		ShowLogo:   !opts.noLogo,
		ShowColors: !opts.noColors,
		ShowTiming: !opts.noTiming,
		Elapsed:    time.Since(start),
		Gap:        opts.gap,
	})
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
	return 0
}

// parseArgs parses the command line. Unrecognized flags and stray
// positional arguments are invocation-level failures.
func parseArgs(args []string) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := flag.NewFlagSet("gofetch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVarP(&opts.help, "help", "h", false, "print usage")
	fs.BoolVarP(&opts.version, "version", "v", false, "print version")
	fs.BoolVar(&opts.noLogo, "no-logo", false, "suppress logo")
	fs.BoolVar(&opts.noColors, "no-colors", false, "suppress colors")
	fs.BoolVar(&opts.noTiming, "no-timing", false, "suppress timing line")
	fs.BoolVar(&opts.debug, "debug", false, "log collector fallbacks")
	fs.IntVar(&opts.gap, "gap", 4, "spaces between logo and info")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}
