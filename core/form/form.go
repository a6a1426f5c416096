package form

import (
	"mime"
	"net/url"
	"strings"
)

// Fields maps a field name to its values in submission order.
type Fields map[string][]string

// First returns the first value submitted under name and whether the
// field is present at all.
func (f Fields) First(name string) (string, bool) {
	values, ok := f[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// File is a single uploaded file, fully buffered in memory.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Files maps an upload field name to its file.
type Files map[string]File

// Decode parses a buffered request body according to the declared content
// type. URL-encoded bodies populate Fields; multipart bodies populate both
// Fields and Files. Any other content type yields empty results without an
// error. A multipart content type that carries no boundary parameter fails
// with ErrMalformedBody.
func Decode(raw []byte, contentType string) (Fields, Files, error) {
	fields := make(Fields)
	files := make(Files)

	mediaType := contentType
	var params map[string]string
	if contentType != "" {
		if mt, ps, err := mime.ParseMediaType(contentType); err == nil {
			mediaType = mt
			params = ps
		}
	}

	switch {
	case strings.HasPrefix(mediaType, "multipart/form-data"):
		boundary, ok := params["boundary"]
		if !ok || boundary == "" {
			return nil, nil, ErrMalformedBody
		}
		decodeMultipart(raw, boundary, fields, files)
	case strings.HasPrefix(mediaType, "application/x-www-form-urlencoded"):
		decodeQuery(string(raw), fields)
	}

	return fields, files, nil
}

// decodeQuery parses a query-string encoded payload into fields. Unlike
// url.ParseQuery it never fails: pairs that cannot be unescaped keep their
// raw bytes, pairs without a name and pairs with a blank value are dropped.
func decodeQuery(body string, fields Fields) {
	for pair := range strings.SplitSeq(body, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		if name == "" || value == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		fields[name] = append(fields[name], value)
	}
}
