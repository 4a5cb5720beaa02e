package main

import (
	"fmt"

	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/spf13/cobra"
)

var (
	searchWhere []string
	searchAll   bool
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().StringArrayVar(&searchWhere, "where", nil, "Criterion of form attribute=value (repeatable)")
	cmd.Flags().BoolVar(&searchAll, "all", false, "List every matching element in document order")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <snapshot>",
		Short: "Find elements of a snapshot by identity attributes",
		Long: `The search command finds the element a comparison would pair with an
element having the given identity attributes. Attributes are tagName,
elementId, cssclass, type, name, value and textContent.

Example:
  stylediff search page.json --where tagName=BUTTON --where textContent=Submit
  stylediff search page.json --where cssclass=nav --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

func runSearch(args []string) error {
	criteria, err := parseCriteria(searchWhere)
	if err != nil {
		return err
	}
	st, err := styletree.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	printVerbose("Searching %d elements for %s\n", st.Size(), criteria)
	if searchAll {
		nodes, err := st.Matches(criteria)
		if err != nil {
			return err
		}
		for _, sn := range nodes {
			printInfo("%s\t%s\n", sn.Path(), sn.Element())
		}
		printStatus("%d matching elements\n", len(nodes))
		return nil
	}
	sn := st.Search(criteria)
	if sn == nil {
		return fmt.Errorf("no element matches %s", criteria)
	}
	printInfo("%s\t%s\n", sn.Path(), sn.Element())
	return nil
}

func parseCriteria(where []string) (snapshot.Criteria, error) {
	var criteria snapshot.Criteria
	for _, w := range where {
		c, err := snapshot.ParseCriterion(w)
		if err != nil {
			return nil, err
		}
		criteria = criteria.With(c.Attribute, c.Value)
	}
	return criteria, nil
}
