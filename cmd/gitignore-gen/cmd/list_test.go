package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_AllCategories(t *testing.T) {
	setupFakeRepo(t)

	out, err := execute(t, "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "root (2):")
	assert.Contains(t, out, "Global (3):")
	assert.Contains(t, out, "community (1):")
	assert.Contains(t, out, "Total: 6 templates")

	// Categories come in fixed order: root, Global, community.
	rootIdx := strings.Index(out, "root (")
	globalIdx := strings.Index(out, "Global (")
	communityIdx := strings.Index(out, "community (")
	assert.Less(t, rootIdx, globalIdx)
	assert.Less(t, globalIdx, communityIdx)
}

func TestListCmd_SingleCategory(t *testing.T) {
	setupFakeRepo(t)

	out, err := execute(t, "", "list", "--category", "Global")

	require.NoError(t, err)
	assert.Contains(t, out, "Global/Linux")
	assert.Contains(t, out, "Global/macOS")
	assert.Contains(t, out, "Global/Windows")
	assert.NotContains(t, out, "Python")
}

func TestListCmd_UnknownCategory(t *testing.T) {
	setupFakeRepo(t)

	_, err := execute(t, "", "list", "--category", "bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestListCmd_JSONOutput(t *testing.T) {
	setupFakeRepo(t)

	out, err := execute(t, "", "list", "--category", "root", "--format", "json")

	require.NoError(t, err)
	var grouped map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &grouped))
	assert.Equal(t, []string{"Go", "Python"}, grouped["root"], "Names are sorted within a category")
}
