package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	generrors "github.com/pomelyu/gitignore-generator/internal/errors"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_List_ParsesEntries(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Go.gitignore", "path": "Go.gitignore", "type": "file", "download_url": "https://raw.test/Go.gitignore"},
			{"name": "Global", "path": "Global", "type": "dir", "url": "https://api.test/Global"}
		]`))
	})

	c := New(srv.URL, "https://raw.test", 5*time.Second)
	entries, err := c.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Go.gitignore", entries[0].Name)
	assert.Equal(t, TypeFile, entries[0].Type)
	assert.Equal(t, "https://raw.test/Go.gitignore", entries[0].DownloadURL)
	assert.Equal(t, TypeDir, entries[1].Type)
	assert.Equal(t, "https://api.test/Global", entries[1].URL)
}

func TestClient_List_SubPath(t *testing.T) {
	var gotPath string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	})

	c := New(srv.URL, "https://raw.test", 5*time.Second)
	_, err := c.List(context.Background(), "Global")
	require.NoError(t, err)
	assert.Equal(t, "/Global", gotPath)
}

func TestClient_List_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	c := New(srv.URL, "https://raw.test", 5*time.Second)
	_, err := c.List(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, generrors.ErrCodeListingFailed, generrors.GetCode(err))
}

func TestClient_List_ServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	c := New(srv.URL, "https://raw.test", 5*time.Second)
	_, err := c.List(context.Background(), "")
	require.Error(t, err)
	assert.True(t, generrors.IsRetryable(err))
}

func TestClient_Download(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("*.log\nbin/\n"))
	})

	c := New("https://api.test", "https://raw.test", 5*time.Second)
	content, err := c.Download(context.Background(), srv.URL+"/Go.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "*.log\nbin/\n", content)
}

func TestClient_Download_Failure(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := New("https://api.test", "https://raw.test", 5*time.Second)
	_, err := c.Download(context.Background(), srv.URL+"/Missing.gitignore")
	require.Error(t, err)
	assert.Equal(t, generrors.ErrCodeDownloadFailed, generrors.GetCode(err))
}

func TestClient_RawURL(t *testing.T) {
	c := New("https://api.test", "https://raw.test/main/", 5*time.Second)
	assert.Equal(t, "https://raw.test/main/Global/Windows.gitignore", c.RawURL("Global/Windows.gitignore"))
	assert.Equal(t, "https://raw.test/main/Go.gitignore", c.RawURL("/Go.gitignore"))
}

func TestClient_Timeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	})

	c := New(srv.URL, "https://raw.test", 20*time.Millisecond)
	_, err := c.List(context.Background(), "")
	assert.Error(t, err)
}
