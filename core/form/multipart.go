package form

import (
	"bytes"
	"strings"
)

var (
	crlf          = []byte("\r\n")
	headerDivider = []byte("\r\n\r\n")
)

// decodeMultipart splits the body on the boundary delimiter and folds each
// part into fields or files. Parts missing the header/content divider are
// skipped rather than failing the whole body.
func decodeMultipart(body []byte, boundary string, fields Fields, files Files) {
	delimiter := append([]byte("--"), boundary...)

	for _, section := range bytes.Split(body, delimiter) {
		if len(section) == 0 || bytes.Equal(section, []byte("--")) || bytes.Equal(section, []byte("--\r\n")) {
			continue
		}
		section = bytes.TrimPrefix(section, crlf)
		section = bytes.TrimSuffix(section, crlf)
		if bytes.Equal(section, []byte("--")) {
			continue
		}

		headerBlock, content, ok := bytes.Cut(section, headerDivider)
		if !ok {
			continue
		}

		headers := parsePartHeaders(headerBlock)
		name, filename := parseDisposition(headers["content-disposition"])

		switch {
		case filename != "":
			contentType := headers["content-type"]
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			files[name] = File{
				Filename:    filename,
				ContentType: contentType,
				Data:        content,
			}
		case name != "":
			fields[name] = append(fields[name], string(content))
		}
	}
}

// parsePartHeaders reads the header block of a single part into a map with
// lower-cased header names.
func parsePartHeaders(block []byte) map[string]string {
	headers := make(map[string]string)
	for line := range strings.SplitSeq(string(block), "\r\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		headers[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
	return headers
}

// parseDisposition extracts the name and filename parameters from a
// Content-Disposition header value.
func parseDisposition(disposition string) (name, filename string) {
	for part := range strings.SplitSeq(disposition, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "name":
			name = value
		case "filename":
			filename = value
		}
	}
	return name, filename
}
