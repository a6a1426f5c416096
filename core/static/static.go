package static

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/waferhq/wafer/core/response"
)

// Dir serves files from a single root directory. Paths are resolved against
// the root and rejected when they escape it.
type Dir struct {
	root string
}

// NewDir creates a file server rooted at root. The directory does not have
// to exist yet; missing files resolve to 404 at request time.
func NewDir(root string) *Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = filepath.Clean(root)
	}
	return &Dir{root: abs}
}

// Serve resolves relPath under the root and returns the complete response:
// 403 when the path escapes the root, 404 when no regular file exists
// there, otherwise 200 with the file bytes and a content type guessed from
// the extension.
func (d *Dir) Serve(relPath string) response.Result {
	requested, err := filepath.Abs(filepath.Join(d.root, relPath))
	if err != nil || !d.contains(requested) {
		return response.StatusBody(403, "403 Forbidden")
	}

	info, err := os.Stat(requested)
	if err != nil || info.IsDir() {
		return response.StatusBody(404, "404 Not Found")
	}

	data, err := os.ReadFile(requested)
	if err != nil {
		return response.StatusBody(404, "404 Not Found")
	}

	contentType := mime.TypeByExtension(filepath.Ext(requested))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return response.StatusBodyHeaders(200, data, []response.Header{
		{Name: "Content-Type", Value: contentType},
	})
}

// contains reports whether path sits inside the root directory.
func (d *Dir) contains(path string) bool {
	return path == d.root || strings.HasPrefix(path, d.root+string(filepath.Separator))
}
