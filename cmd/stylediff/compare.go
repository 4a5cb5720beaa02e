package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/layoutcompare/report"
	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/spf13/cobra"
)

var (
	compareProperties  []string
	compareErrorProps  []string
	compareFormat      string
	compareOutput      string
	compareOutputDir   string
	compareName        string
	compareTitle       string
	compareOnlyChanges bool
	compareNoFail      bool
)

func init() {
	cmd := newCompareCmd()
	cmd.Flags().StringSliceVar(&compareProperties, "properties", styletree.DefaultProperties,
		"Identity attributes used to pair elements")
	cmd.Flags().StringArrayVar(&compareErrorProps, "error-property", nil,
		"Error-class style property (repeatable, replaces the defaults)")
	cmd.Flags().StringVar(&compareFormat, "format", "legacy", "Output format (legacy, tree, text, html)")
	cmd.Flags().StringVar(&compareOutput, "output", "", "Save result to file")
	cmd.Flags().StringVar(&compareOutputDir, "output-dir", "", "Save result to a directory, named by --name")
	cmd.Flags().StringVar(&compareName, "name", "", "Name of the comparison, e.g. page and viewport")
	cmd.Flags().StringVar(&compareTitle, "title", "", "Title of HTML reports (defaults to --name)")
	cmd.Flags().BoolVar(&compareOnlyChanges, "only-changes", false, "Omit elements without differences")
	cmd.Flags().BoolVar(&compareNoFail, "no-fail", false, "Exit with status 0 even if error-class properties differ")
	rootCmd.AddCommand(cmd)
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <snapshot1> <snapshot2>",
		Short: "Compare the styles of two snapshots",
		Long: `The compare command pairs the elements of two snapshots by their identity
attributes and lists differing style properties. If error-class properties
(cursor, background-color and font-weight by default) differ, the comparison
fails and stylediff exits with a non-zero status.

Example:
  stylediff compare expected.json actual.json
  stylediff compare expected.json actual.json --format text --only-changes
  stylediff compare expected.json actual.json --properties tagName,elementId
  stylediff compare expected.json actual.json --error-property color --error-property cursor
  stylediff compare expected.json actual.json --output-dir diffs --name "home (mobile)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args)
		},
	}
	return cmd
}

func runCompare(args []string) error {
	ext, err := formatExtension(compareFormat)
	if err != nil {
		return err
	}
	printVerbose("Comparing %s and %s...\n", args[0], args[1])
	st1, err := styletree.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	st2, err := styletree.LoadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[1], err)
	}
	printVerbose("Loaded %d and %d elements\n", st1.Size(), st2.Size())
	var opts []styletree.Option
	if len(compareErrorProps) > 0 {
		opts = append(opts, styletree.WithErrorProperties(compareErrorProps...))
	}
	result, err := st1.CompareTo(st2, compareProperties, opts...)
	if err != nil {
		return err
	}
	path, err := outputFile(compareOutput, compareOutputDir, compareName, ext)
	if err != nil {
		return err
	}
	title := compareTitle
	if title == "" {
		title = compareName
	}
	ropts := report.Options{Title: title, OnlyChanges: compareOnlyChanges}
	err = withOutput(path, func(w io.Writer) error {
		return writeResult(w, result, compareFormat, ropts)
	})
	if err != nil {
		return err
	}
	summary := result.Summary()
	if compareFormat != "text" || path != "" {
		printStatus("%s\n", summary)
	}
	if summary.TotalError && !compareNoFail {
		return fmt.Errorf("%w: error-class properties differ", errComparisonFailed)
	}
	return nil
}

func formatExtension(format string) (string, error) {
	switch format {
	case "legacy", "tree":
		return ".json", nil
	case "text":
		return ".txt", nil
	case "html":
		return ".html", nil
	}
	return "", fmt.Errorf("unknown format %q (use legacy, tree, text or html)", format)
}

// writeResult renders a comparison result in one of the output formats.
func writeResult(w io.Writer, result *styletree.Result, format string, opts report.Options) error {
	if opts.OnlyChanges && (format == "legacy" || format == "tree") {
		result = &styletree.Result{Root: report.Prune(result.Root), TotalError: result.TotalError}
	}
	switch format {
	case "legacy":
		if err := styletree.WriteLegacy(w, result.Root); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "tree":
		return writeJSON(w, result)
	case "text":
		return report.Text(w, result, opts)
	case "html":
		return report.HTML(w, result, opts)
	}
	return fmt.Errorf("unknown format %q", format)
}
