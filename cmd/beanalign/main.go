// Package main is the beanalign batch formatter: it aligns amounts in
// beancount files and can dump computed fold levels.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/beanalign/internal/config"
	"github.com/dshills/beanalign/internal/engine/buffer"
	"github.com/dshills/beanalign/internal/fold"
	"github.com/dshills/beanalign/internal/format"
	"github.com/dshills/beanalign/internal/ledger"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	column     int
	fixedCJK   bool
	write      bool
	balances   bool
	folds      bool
	files      []string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.column > 0 {
		cfg.SeparatorColumn = opts.column
	}
	if opts.fixedCJK {
		cfg.FixedCJKWidth = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if len(opts.files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input files")
		flag.Usage()
		return 1
	}

	exit := 0
	for _, path := range opts.files {
		if err := processFile(path, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			exit = 1
		}
	}
	return exit
}

func processFile(path string, cfg config.Config, opts options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	buf, err := buffer.FromReader(f)
	f.Close()
	if err != nil {
		return err
	}

	if opts.folds {
		return dumpFolds(buf)
	}

	fopts := format.Options{
		SeparatorColumn: cfg.SeparatorColumn,
		FixedCJKWidth:   cfg.FixedCJKWidth,
	}
	format.FormatBuffer(buf, fopts)

	if opts.balances {
		for n := 0; n < buf.LineCount(); n++ {
			line, _ := buf.LineText(n)
			if ledger.IsBalance(line) {
				format.AlignLineAt(buf, n, fopts)
			}
		}
	}

	if opts.write {
		return os.WriteFile(path, []byte(buf.Text()), 0o644)
	}
	_, err = os.Stdout.WriteString(buf.Text())
	return err
}

// dumpFolds prints one line per buffer line: an open/close tag, the
// level, and the text.
func dumpFolds(buf *buffer.Buffer) error {
	cache := fold.NewCache(buf)
	for n, info := range cache.Infos() {
		tag := " "
		switch {
		case info.Open && info.Close:
			tag = "x"
		case info.Open:
			tag = ">"
		case info.Close:
			tag = "<"
		}
		line, _ := buf.LineText(n)
		if _, err := fmt.Printf("%s%d %s\n", tag, info.Level, line); err != nil {
			return err
		}
	}
	return nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.column, "col", 0, "Separator column (overrides config)")
	flag.BoolVar(&opts.fixedCJK, "cjk", false, "Count wide (CJK) characters as two columns")
	flag.BoolVar(&opts.write, "w", false, "Write result back to the file instead of stdout")
	flag.BoolVar(&opts.balances, "balances", false, "Also align balance assertion lines")
	flag.BoolVar(&opts.folds, "folds", false, "Dump fold levels instead of formatting")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "beanalign - align amounts in beancount files\n\n")
		fmt.Fprintf(os.Stderr, "Usage: beanalign [options] files...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  beanalign ledger.beancount          Format to stdout\n")
		fmt.Fprintf(os.Stderr, "  beanalign -w -col 52 ledger.beancount   Format in place at column 52\n")
		fmt.Fprintf(os.Stderr, "  beanalign -folds ledger.beancount   Show fold levels\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("beanalign %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}
