package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/layoutcompare/dom/domdbg"
	"github.com/npillmayer/layoutcompare/dom/styledtree"
	"github.com/npillmayer/layoutcompare/report"
	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/spf13/cobra"
)

var (
	dumpFormat    string
	dumpGroups    []string
	dumpHighlight []string
	dumpOutput    string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", "tree", "Output format (tree, dot)")
	cmd.Flags().StringSliceVar(&dumpGroups, "groups", domdbg.DefaultGroups,
		"Property groups to show (Margins, Padding, Border, Dimension, Display, Region, Color, Font, Text, UI, X)")
	cmd.Flags().StringArrayVar(&dumpHighlight, "highlight", nil,
		"Highlight elements matching attribute=value (repeatable, dot format only)")
	cmd.Flags().StringVar(&dumpOutput, "output", "", "Save dump to file")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <snapshot>",
		Short: "Print the element tree of a snapshot",
		Long: `The dump command prints the element tree of a snapshot, together with
the style properties of selected property groups. The dot format creates
input for GraphViz.

Example:
  stylediff dump page.json
  stylediff dump page.json --groups Color,Font
  stylediff dump page.json --format dot --highlight tagName=BUTTON | dot -Tsvg > page.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	if dumpFormat != "tree" && dumpFormat != "dot" {
		return fmt.Errorf("unknown format %q (use tree or dot)", dumpFormat)
	}
	st, err := styletree.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	var highlight []*styledtree.StyNode
	if len(dumpHighlight) > 0 {
		criteria, err := parseCriteria(dumpHighlight)
		if err != nil {
			return err
		}
		if highlight, err = st.Matches(criteria); err != nil {
			return err
		}
		printVerbose("Highlighting %d elements\n", len(highlight))
	}
	return withOutput(dumpOutput, func(w io.Writer) error {
		if dumpFormat == "dot" {
			return domdbg.ToGraphViz(st.StyledRoot(), w, dumpGroups, highlight...)
		}
		return report.Snapshot(w, st.StyledRoot(), dumpGroups)
	})
}
