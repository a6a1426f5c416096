package response

import (
	"fmt"
	"iter"
	"strings"

	"github.com/waferhq/wafer/core/cookie"
)

// Normalized is the canonical wire-level response: a status code, the final
// ordered header list, and exactly one of Buffered or Stream.
type Normalized struct {
	Status  int
	Headers []Header

	// Buffered holds the complete body for string and byte results.
	Buffered []byte
	// Stream produces the body chunk by chunk for lazy results. It must be
	// consumed exactly once.
	Stream iter.Seq[[]byte]
}

// Normalize converts a handler result into a Normalized response and
// guarantees the two response invariants: the final header list carries the
// session cookie for sessionToken and a Content-Type, each exactly once.
// Handler-supplied versions of either header win over the defaults, so
// normalizing an already-normalized header list is a no-op.
//
// A body value that is not a string, []byte, or iter.Seq[[]byte] fails with
// ErrInvalidBody.
func Normalize(res Result, sessionToken string) (Normalized, error) {
	status := res.status
	if res.shape == shapeBody || status == 0 {
		status = 200
	}

	headers := make([]Header, len(res.headers), len(res.headers)+2)
	copy(headers, res.headers)

	if sessionToken != "" && !hasSessionCookie(headers) {
		headers = append(headers, Header{Name: "Set-Cookie", Value: cookie.SetCookie(sessionToken)})
	}
	if !hasHeader(headers, "Content-Type") {
		headers = append(headers, Header{Name: "Content-Type", Value: "text/html; charset=utf-8"})
	}

	out := Normalized{Status: status, Headers: headers}
	switch body := res.body.(type) {
	case nil:
		out.Buffered = nil
	case string:
		out.Buffered = []byte(body)
	case []byte:
		out.Buffered = body
	case iter.Seq[[]byte]:
		out.Stream = body
	default:
		return Normalized{}, fmt.Errorf("%w: %T", ErrInvalidBody, res.body)
	}
	return out, nil
}

// hasHeader reports whether the list carries a header with the given name,
// compared case-insensitively.
func hasHeader(headers []Header, name string) bool {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return true
		}
	}
	return false
}

// hasSessionCookie reports whether some Set-Cookie header already carries a
// session token, supplied by the handler itself or by a previous
// normalization pass.
func hasSessionCookie(headers []Header) bool {
	for _, h := range headers {
		if strings.EqualFold(h.Name, "Set-Cookie") && strings.Contains(h.Value, cookie.SessionCookieName+"=") {
			return true
		}
	}
	return false
}
