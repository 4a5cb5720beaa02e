package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name           string
		where          []string
		all            bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "by tag name",
			where:       []string{"tagName=BUTTON"},
			wantContain: []string{"BODY/BUTTON[1]\t<BUTTON #login .btn primary>"},
		},
		{
			name:        "value is trimmed",
			where:       []string{"tagName=H1", "textContent=  Welcome "},
			wantContain: []string{"BODY/H1[0]\t<H1 #title>"},
		},
		{
			name:           "ancestor wins over descendants",
			where:          []string{"type="},
			wantContain:    []string{"BODY\t<BODY>"},
			wantNotContain: []string{"H1"},
		},
		{
			name:        "all matches in document order",
			where:       []string{"type="},
			all:         true,
			wantContain: []string{"BODY\t<BODY>\nBODY/H1[0]\t<H1 #title>\n"},
		},
		{
			name:    "no match",
			where:   []string{"tagName=FORM"},
			wantErr: true,
		},
		{
			name:    "unknown attribute",
			where:   []string{"color=red"},
			wantErr: true,
		},
		{
			name:    "malformed criterion",
			where:   []string{"tagName"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			quiet = false
			searchWhere = tt.where
			searchAll = tt.all
			output, err := captureOutput(t, func() error {
				return runSearch([]string{testSnapshotPath(t, "expected.json")})
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

func TestParseCriteriaReplaces(t *testing.T) {
	criteria, err := parseCriteria([]string{"tagName=P", "tagName=DIV"})
	require.NoError(t, err)
	require.Len(t, criteria, 1)
	assert.Equal(t, "DIV", criteria[0].Value)
}
