package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_ExactMatchWins(t *testing.T) {
	setupFakeRepo(t)

	out, err := execute(t, "", "search", "go")

	require.NoError(t, err)
	assert.Contains(t, out, `Found 1 template(s) for "go"`)
	assert.Contains(t, out, "Go")
	assert.NotContains(t, out, "Hugo", "Exact match should suppress substring matches")
}

func TestSearchCmd_SubstringMatches(t *testing.T) {
	setupFakeRepo(t)

	out, err := execute(t, "", "search", "hugo")

	require.NoError(t, err)
	assert.Contains(t, out, "community/Golang/Hugo")
	assert.Contains(t, out, "[community]")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	setupFakeRepo(t)

	out, err := execute(t, "", "search", "klingon")

	require.NoError(t, err, "No matches is not an error")
	assert.Contains(t, out, `No templates found for "klingon"`)
}

func TestSearchCmd_LimitFlag(t *testing.T) {
	setupFakeRepo(t)

	// "i" substring-matches several templates; limit to one.
	out, err := execute(t, "", "search", "i", "--limit", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Found")
	// Only one result line is indented under the header.
	assert.Equal(t, 1, countIndentedLines(out))
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	setupFakeRepo(t)

	out, err := execute(t, "", "search", "windows", "--format", "json")

	require.NoError(t, err)
	var matches []string
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	assert.Equal(t, []string{"Global/Windows"}, matches)
}

func countIndentedLines(s string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, "  ") {
			count++
		}
	}
	return count
}
