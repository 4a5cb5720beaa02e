package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		name           string
		snapshot2      string
		format         string
		onlyChanges    bool
		noFail         bool
		errorProps     []string
		wantFail       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "identical snapshots",
			snapshot2:   "expected.json",
			format:      "text",
			wantContain: []string{"SUCCESS: 3 elements, 3 matched, 0 not found, 0 style differences, 0 errors"},
		},
		{
			name:        "cosmetic differences succeed",
			snapshot2:   "cosmetic.json",
			format:      "text",
			wantContain: []string{"margin-top: 8px → 10px", "SUCCESS: 3 elements"},
			wantNotContain: []string{
				"background-color",
			},
		},
		{
			name:      "error-class difference fails",
			snapshot2: "actual.json",
			format:    "text",
			wantFail:  true,
			wantContain: []string{
				"[error]  background-color: rgba(255,255,255,255) → rgba(0,0,0,0)",
				"FAIL: 3 elements, 3 matched, 0 not found, 2 style differences, 1 errors",
			},
		},
		{
			name:        "no-fail keeps exit status",
			snapshot2:   "actual.json",
			format:      "legacy",
			noFail:      true,
			wantContain: []string{`"errorList": [`, `"error": "Differences at: background-color"`},
		},
		{
			name:        "custom error properties",
			snapshot2:   "actual.json",
			format:      "legacy",
			errorProps:  []string{"margin-top"},
			wantFail:    true,
			wantContain: []string{`"error": "Differences at: margin-top"`},
		},
		{
			name:           "only changes",
			snapshot2:      "actual.json",
			format:         "legacy",
			onlyChanges:    true,
			noFail:         true,
			wantContain:    []string{`"tagName1": "BUTTON"`},
			wantNotContain: []string{`"tagName1": "H1"`},
		},
		{
			name:        "tree format carries summary",
			snapshot2:   "actual.json",
			format:      "tree",
			noFail:      true,
			wantContain: []string{`"totalError": true`, `"summary": {`, `"errorDiffs": 1`},
		},
		{
			name:        "html format",
			snapshot2:   "actual.json",
			format:      "html",
			noFail:      true,
			wantContain: []string{"<!DOCTYPE html>", `<p class="summary FAIL">`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			compareProperties = styletree.DefaultProperties
			compareFormat = tt.format
			compareOnlyChanges = tt.onlyChanges
			compareNoFail = tt.noFail
			compareErrorProps = tt.errorProps
			args := []string{testSnapshotPath(t, "expected.json"), testSnapshotPath(t, tt.snapshot2)}
			output, err := captureOutput(t, func() error {
				return runCompare(args)
			})
			if tt.wantFail {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errComparisonFailed), "expected comparison to fail, have %v", err)
			} else {
				require.NoError(t, err)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
			if tt.format == "legacy" || tt.format == "tree" {
				assertJSON(t, output)
			}
		})
	}
}

func TestCompareOutputDir(t *testing.T) {
	resetFlags()
	compareProperties = styletree.DefaultProperties
	compareOutputDir = filepath.Join(t.TempDir(), "diffs")
	compareName = "home (mobile)"
	compareNoFail = true
	args := []string{testSnapshotPath(t, "expected.json"), testSnapshotPath(t, "actual.json")}
	output, err := captureOutput(t, func() error {
		return runCompare(args)
	})
	require.NoError(t, err)
	assert.Empty(t, output)

	data, err := os.ReadFile(filepath.Join(compareOutputDir, "home__mobile_.json"))
	require.NoError(t, err)
	var legacy []interface{}
	require.NoError(t, json.Unmarshal(data, &legacy))
	assert.Len(t, legacy, 3, "expected BODY record followed by two children")
}

func TestCompareInvalidArguments(t *testing.T) {
	resetFlags()
	compareProperties = styletree.DefaultProperties
	compareFormat = "pdf"
	args := []string{testSnapshotPath(t, "expected.json"), testSnapshotPath(t, "actual.json")}
	_, err := captureOutput(t, func() error { return runCompare(args) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	resetFlags()
	compareProperties = []string{"color"}
	_, err = captureOutput(t, func() error { return runCompare(args) })
	require.Error(t, err)

	resetFlags()
	compareProperties = styletree.DefaultProperties
	compareOutputDir = t.TempDir()
	_, err = captureOutput(t, func() error { return runCompare(args) })
	require.Error(t, err, "--output-dir without --name must be rejected")

	resetFlags()
	compareProperties = styletree.DefaultProperties
	_, err = captureOutput(t, func() error {
		return runCompare([]string{testSnapshotPath(t, "expected.json"), "testdata/missing.json"})
	})
	require.Error(t, err)
}

func TestTraceLevel(t *testing.T) {
	assert.NoError(t, setupTracing("", ""))
	assert.Error(t, setupTracing("chatty", ""))
}
