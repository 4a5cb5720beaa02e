package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/npillmayer/layoutcompare/report"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	traceLevel string
	traceDest  string
)

// errComparisonFailed is returned if error-class properties differ.
var errComparisonFailed = errors.New("comparison failed")

var rootCmd = &cobra.Command{
	Use:   "stylediff",
	Short: "Compare computed element styles of two page snapshots",
	Long: `stylediff compares snapshots of computed element styles, as captured
from a rendered page. Elements are paired by identity attributes, then their
style properties are compared. Colour notations are normalised before
comparison. Differences in error-class properties let the comparison fail.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(traceLevel, traceDest)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "",
		"Trace level for all packages (Debug, Info, Error)")
	rootCmd.PersistentFlags().StringVar(&traceDest, "trace-to", "",
		"Trace destination (Stdout, Stderr or file://path)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// --- Tracing ----------------------------------------------------------

// tracerKeys are the trace keys of the packages of this module.
var tracerKeys = []string{
	"layoutcompare.tree",
	"layoutcompare.dom",
	"layoutcompare.snapshot",
	"layoutcompare.styletree",
	"layoutcompare.report",
}

// setupTracing routes the package tracers to the Go standard logger.
// Without a trace level, tracing stays disabled.
func setupTracing(level, dest string) error {
	if level == "" {
		return nil
	}
	switch strings.ToLower(level) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(koanf.New("."), "", nil)
	conf.InitDefaults()
	conf.Set("trace.root", level)
	for _, key := range tracerKeys {
		conf.Set("trace."+key, level)
	}
	if dest != "" {
		conf.Set("tracing.destination", dest)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	printVerbose("Tracing with level %s\n", level)
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printStatus prints a status message to stderr if not in quiet mode
func printStatus(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// writeJSON outputs data as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// --- Output destinations ----------------------------------------------

// outputFile resolves the output destination of a command. An explicit
// file wins; with a directory, the file is named after key. An empty
// result denotes stdout.
func outputFile(file, dir, key, ext string) (string, error) {
	if file != "" {
		return file, nil
	}
	if dir == "" {
		return "", nil
	}
	if key == "" {
		return "", errors.New("--output-dir needs --name")
	}
	return filepath.Join(dir, report.SafeFilename(key)+ext), nil
}

// withOutput runs fn with a writer for path, or for stdout if path is empty.
func withOutput(path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printVerbose("Wrote %s\n", path)
	return nil
}
