package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/layoutcompare/dom/domdbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpCommand(t *testing.T) {
	tests := []struct {
		name           string
		format         string
		groups         []string
		highlight      []string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "tree with default groups",
			format:      "tree",
			groups:      domdbg.DefaultGroups,
			wantContain: []string{`BODY "Welcome Sign in"`, "[Margins]  margin-top: 8px", `BUTTON#login.btn.primary "Sign in"`},
			wantNotContain: []string{
				"font-weight",
			},
		},
		{
			name:        "tree with selected groups",
			format:      "tree",
			groups:      []string{"Color", "Font"},
			wantContain: []string{"[Color]  color: #333333", "[Font]  font-weight: 700"},
			wantNotContain: []string{
				"margin-top",
			},
		},
		{
			name:      "dot with highlight",
			format:    "dot",
			groups:    domdbg.DefaultGroups,
			highlight: []string{"tagName=BUTTON"},
			wantContain: []string{
				"digraph g {",
				`node00003	[ label="BUTTON#login\nSign in" shape=ellipse style=filled fillcolor=orange ]`,
			},
		},
		{
			name:    "unknown format",
			format:  "svg",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			dumpFormat = tt.format
			dumpGroups = tt.groups
			dumpHighlight = tt.highlight
			output, err := captureOutput(t, func() error {
				return runDump([]string{testSnapshotPath(t, "expected.json")})
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDumpToFile(t *testing.T) {
	resetFlags()
	dumpFormat = "dot"
	dumpOutput = filepath.Join(t.TempDir(), "page.dot")
	_, err := captureOutput(t, func() error {
		return runDump([]string{testSnapshotPath(t, "expected.json")})
	})
	require.NoError(t, err)
	data, err := os.ReadFile(dumpOutput)
	require.NoError(t, err)
	assert.Contains(t, string(data), "node00001 -> node00002 [weight=1]")
}
