/*
Package report renders comparison results for humans.

Results of comparing style trees may be rendered as an indented text tree
(for terminals) or as an HTML document. Both renderers may omit elements
without differences.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layoutcompare.report'.
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.report")
}

// Options control rendering of reports.
type Options struct {
	Title       string // document title, used for HTML reports
	OnlyChanges bool   // omit subtrees without differences or errors
}

// Prune returns a copy of a diff tree with every subtree removed which does
// not contain differences or errors. The root is always kept.
func Prune(root *styletree.DiffNode) *styletree.DiffNode {
	if root == nil {
		return nil
	}
	pruned := &styletree.DiffNode{Record: root.Record}
	for _, ch := range root.Children {
		if ch.HasChanges() {
			pruned.Children = append(pruned.Children, Prune(ch))
		}
	}
	return pruned
}

// SafeFilename replaces characters which are problematic in file names
// (space, ?, #, /, :, parentheses, <, >, | and backslash) by underscores.
func SafeFilename(name string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if strings.ContainsRune(` ?#/:()<>|\`, r) {
			return '_'
		}
		return r
	}, name))
}

func shorten(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max]) + "…"
}
