// Package cmd wires up the CLI flags and dispatches to the line mode.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"aster/config"
	"aster/internal/core"
	"aster/internal/errors"
	"aster/internal/metrics"
	"aster/internal/prompt"
	"aster/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X aster/cmd.version=1.1.0"
var version = "1.0.0" //nolint:gochecknoglobals

// stdio bundles the process streams so tests can replace them.
type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Execute parses args and runs aster over the process's standard
// streams.
func Execute(ctx context.Context, args []string) error {
	return run(ctx, args, stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(ctx context.Context, args []string, std stdio) error {
	// ── cipher flags ─────────────────────────────────────────────────
	// -d and -k are matched case-insensitively by a plain scan; the
	// flag set below never sees them.
	cfg := config.Derive(args)

	fs := flag.NewFlagSet("aster", flag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(std.err)

	// ── key entry ────────────────────────────────────────────────────
	fs.BoolVar(&cfg.PromptKey, "prompt-key", false, "Read the key from the terminal when -k is not given")
	fs.StringVar(&cfg.TTYPath, "tty", cfg.TTYPath, "Terminal device used by --prompt-key")

	// ── output ───────────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity on stderr (repeatable)")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print line and byte counts as JSON to stderr on exit")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(std.err, fs) }

	// ── parse ────────────────────────────────────────────────────────
	if err := fs.Parse(config.StripCipherFlags(args)); err != nil {
		return err
	}

	if showHelp {
		printUsage(std.err, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(std.out, "aster %s\n", version)
		return nil
	}

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(std.err)

	// ── key prompt ───────────────────────────────────────────────────
	if cfg.Key == "" && cfg.PromptKey {
		key, err := prompt.ReadKey(cfg.TTYPath)
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		cfg = cfg.WithKey(key)
	}

	// ── build & run ──────────────────────────────────────────────────
	var stats *metrics.Collector
	if cfg.Stats {
		stats = metrics.New()
		defer func() { fmt.Fprintln(std.err, stats.JSON()) }()
	}

	mode, err := core.Build(cfg, logger, stats)
	if err != nil {
		return err
	}
	if lm, ok := mode.(*core.LineMode); ok {
		lm.Stdin, lm.Stdout = std.in, std.out
	}
	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// Report writes err to w the way the process reports a failed run and
// returns the exit status.  A missing key prints the fixed message on
// its own line; anything else is prefixed with "aster: ".
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if errors.IsMissingKey(err) {
		fmt.Fprintln(w, config.MissingKeyMessage)
	} else {
		fmt.Fprintf(w, "aster: %v\n", err)
	}
	return 1
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `aster – a Vigenère cipher over the full byte range v%s

Reads lines from standard input and prints each one encrypted (or
decrypted) with a repeating key.

Usage:
  aster -k <key> [options]                    Encrypt stdin
  aster -d -k <key> [options]                 Decrypt stdin

Cipher flags (case-insensitive):
  -d, -D                 Decrypt instead of encrypt
  -k, -K <key>           Key to shift by (required)

Options:
`, version)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  echo "attack at dawn" | aster -k lemon                 Encrypt a line
  aster -k lemon < notes.txt | aster -D -K lemon         Round trip
  aster --prompt-key -v < plain.txt > cipher.txt         Key typed at the terminal
`)
}
