package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomelyu/gitignore-generator/internal/catalog"
	"github.com/pomelyu/gitignore-generator/internal/logging"
)

// fakeDownloader serves canned content by URL and counts downloads.
type fakeDownloader struct {
	content map[string]string
	calls   int
}

func (f *fakeDownloader) Download(_ context.Context, url string) (string, error) {
	f.calls++
	if content, ok := f.content[url]; ok {
		return content, nil
	}
	return "", errors.New("not found: " + url)
}

func (f *fakeDownloader) RawURL(relPath string) string {
	return "https://raw.test/" + relPath
}

func testCatalog() *catalog.Catalog {
	c := catalog.NewCatalog()
	c.Add(catalog.Entry{
		FullName:    "Go",
		Path:        "Go.gitignore",
		DownloadURL: "https://raw.test/Go.gitignore",
		Category:    catalog.CategoryRoot,
	})
	// No direct download location: exercises the constructed-URL fallback.
	c.Add(catalog.Entry{
		FullName: "Global/Windows",
		Path:     "Global/Windows.gitignore",
		Category: catalog.CategoryGlobal,
	})
	return c
}

func TestCache_Get_UnknownNameIsMiss(t *testing.T) {
	dl := &fakeDownloader{}
	c := NewCache(t.TempDir(), testCatalog(), dl, logging.Discard())

	_, ok := c.Get(context.Background(), "NoSuchTemplate")
	assert.False(t, ok)
	assert.Zero(t, dl.calls)
}

func TestCache_Get_DownloadsAndPersists(t *testing.T) {
	dir := t.TempDir()
	dl := &fakeDownloader{content: map[string]string{
		"https://raw.test/Go.gitignore": "bin/\n*.test\n",
	}}
	c := NewCache(dir, testCatalog(), dl, logging.Discard())

	content, ok := c.Get(context.Background(), "Go")
	require.True(t, ok)
	assert.Equal(t, "bin/\n*.test\n", content)

	data, err := os.ReadFile(filepath.Join(dir, "Go.gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "bin/\n*.test\n", string(data))
}

func TestCache_Get_DiskHitSkipsNetwork(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go.gitignore"), []byte("cached\n"), 0o644))

	dl := &fakeDownloader{}
	c := NewCache(dir, testCatalog(), dl, logging.Discard())

	content, ok := c.Get(context.Background(), "Go")
	require.True(t, ok)
	assert.Equal(t, "cached\n", content)
	assert.Zero(t, dl.calls, "a cached copy must be returned without any network access")
}

func TestCache_Get_RepeatHitUsesMemory(t *testing.T) {
	dir := t.TempDir()
	dl := &fakeDownloader{content: map[string]string{
		"https://raw.test/Go.gitignore": "bin/\n",
	}}
	c := NewCache(dir, testCatalog(), dl, logging.Discard())

	_, ok := c.Get(context.Background(), "Go")
	require.True(t, ok)
	_, ok = c.Get(context.Background(), "Go")
	require.True(t, ok)

	assert.Equal(t, 1, dl.calls)
}

func TestCache_Get_NestedNameSanitizedForStorage(t *testing.T) {
	dir := t.TempDir()
	dl := &fakeDownloader{content: map[string]string{
		"https://raw.test/Global/Windows.gitignore": "Thumbs.db\n",
	}}
	c := NewCache(dir, testCatalog(), dl, logging.Discard())

	content, ok := c.Get(context.Background(), "Global/Windows")
	require.True(t, ok)
	assert.Equal(t, "Thumbs.db\n", content)

	// The path separator is replaced for the storage key.
	_, err := os.Stat(filepath.Join(dir, "Global_Windows.gitignore"))
	assert.NoError(t, err)
}

func TestCache_Get_FallbackURLWhenNoDirectLocation(t *testing.T) {
	dl := &fakeDownloader{content: map[string]string{
		"https://raw.test/Global/Windows.gitignore": "Thumbs.db\n",
	}}
	c := NewCache(t.TempDir(), testCatalog(), dl, logging.Discard())

	_, ok := c.Get(context.Background(), "Global/Windows")
	assert.True(t, ok)
}

func TestCache_Get_FailedDownloadCachesNothing(t *testing.T) {
	dir := t.TempDir()
	dl := &fakeDownloader{} // serves nothing
	c := NewCache(dir, testCatalog(), dl, logging.Discard())

	_, ok := c.Get(context.Background(), "Go")
	assert.False(t, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a failed fetch must not leave a cache file behind")

	// The miss is not memoized either; a later attempt hits the network again.
	dl.content = map[string]string{"https://raw.test/Go.gitignore": "bin/\n"}
	content, ok := c.Get(context.Background(), "Go")
	assert.True(t, ok)
	assert.Equal(t, "bin/\n", content)
}
