package static_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waferhq/wafer/core/response"
	"github.com/waferhq/wafer/core/static"
)

func normalize(t *testing.T, res response.Result) response.Normalized {
	t.Helper()
	norm, err := response.Normalize(res, "tok")
	require.NoError(t, err)
	return norm
}

func TestServeFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.txt"), []byte("file content"), 0o644))

	norm := normalize(t, static.NewDir(root).Serve("hello.txt"))
	assert.Equal(t, 200, norm.Status)
	assert.Equal(t, []byte("file content"), norm.Buffered)

	var contentType string
	for _, h := range norm.Headers {
		if h.Name == "Content-Type" {
			contentType = h.Value
		}
	}
	assert.Contains(t, contentType, "text/plain")
}

func TestServeUnknownExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.xyzzy"), []byte{1}, 0o644))

	norm := normalize(t, static.NewDir(root).Serve("blob.xyzzy"))
	found := false
	for _, h := range norm.Headers {
		if h.Name == "Content-Type" {
			found = true
			assert.Equal(t, "application/octet-stream", h.Value)
		}
	}
	assert.True(t, found)
}

func TestServeMissingFile(t *testing.T) {
	t.Parallel()

	norm := normalize(t, static.NewDir(t.TempDir()).Serve("missing.txt"))
	assert.Equal(t, 404, norm.Status)
	assert.Equal(t, []byte("404 Not Found"), norm.Buffered)
}

func TestServeDirectoryIsNotFound(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	norm := normalize(t, static.NewDir(root).Serve("sub"))
	assert.Equal(t, 404, norm.Status)
}

func TestServeTraversalForbidden(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "static")
	require.NoError(t, os.Mkdir(root, 0o755))

	norm := normalize(t, static.NewDir(root).Serve("../secret.txt"))
	assert.Equal(t, 403, norm.Status)
	assert.Equal(t, []byte("403 Forbidden"), norm.Buffered)
}
