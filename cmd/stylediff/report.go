package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/layoutcompare/report"
	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/spf13/cobra"
)

var (
	reportFormat      string
	reportTitle       string
	reportOutput      string
	reportOnlyChanges bool
)

func init() {
	cmd := newReportCmd()
	cmd.Flags().StringVar(&reportFormat, "format", "text", "Output format (legacy, tree, text, html)")
	cmd.Flags().StringVar(&reportTitle, "title", "", "Title of HTML reports")
	cmd.Flags().StringVar(&reportOutput, "output", "", "Save report to file")
	cmd.Flags().BoolVar(&reportOnlyChanges, "only-changes", false, "Omit elements without differences")
	rootCmd.AddCommand(cmd)
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <diff.json>",
		Short: "Render a stored comparison result",
		Long: `The report command reads a comparison result, as written by compare
in legacy or tree format, and renders it again. Use - to read from stdin.

Example:
  stylediff report diffs/home.json
  stylediff report diffs/home.json --format html --title Home --output home.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args)
		},
	}
	return cmd
}

func runReport(args []string) error {
	if _, err := formatExtension(reportFormat); err != nil {
		return err
	}
	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}
	result, err := styletree.ReadResult(in)
	if err != nil {
		return err
	}
	printVerbose("Read %s\n", result.Summary())
	opts := report.Options{Title: reportTitle, OnlyChanges: reportOnlyChanges}
	return withOutput(reportOutput, func(w io.Writer) error {
		return writeResult(w, result, reportFormat, opts)
	})
}
