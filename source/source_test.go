package source

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToStreamLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.dt")
	require.NoError(t, os.WriteFile(path, []byte("<doctag><text>x</text></doctag>"), 0o666))

	s, e := ResolveToStream(path)
	require.NoError(t, e)
	defer s.Close()

	assert.Equal(t, "doc.dt", s.Name)
	content, e := io.ReadAll(s.Reader)
	require.NoError(t, e)
	assert.Equal(t, "<doctag><text>x</text></doctag>", string(content))
}

func TestResolveToStreamMissing(t *testing.T) {
	_, e := ResolveToStream(filepath.Join(t.TempDir(), "nope.dt"))
	assert.Error(t, e)
}

func TestResolveToStreamURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote content"))
	}))
	defer srv.Close()

	s, e := ResolveToStream(srv.URL)
	require.NoError(t, e)
	defer s.Close()

	// URL without a path component falls back to a generic stream name.
	assert.Equal(t, "file", s.Name)
	content, e := io.ReadAll(s.Reader)
	require.NoError(t, e)
	assert.Equal(t, "remote content", string(content))
}

func TestResolveToStreamHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, e := ResolveToStream(srv.URL + "/missing.dt")
	assert.Error(t, e)
}

func TestResolveToPathLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.dt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o666))

	resolved, e := ResolveToPath(path, "")
	require.NoError(t, e)
	assert.Equal(t, path, resolved)
}

func TestResolveToPathURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("downloaded"))
	}))
	defer srv.Close()

	resolved, e := ResolveToPath(srv.URL+"/paper.dt", t.TempDir())
	require.NoError(t, e)
	assert.Equal(t, "paper.dt", filepath.Base(resolved))

	content, e := os.ReadFile(resolved)
	require.NoError(t, e)
	assert.Equal(t, "downloaded", string(content))
}
