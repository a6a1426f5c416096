// Package cookie implements the wire format of the session cookie: parsing
// the raw Cookie request header into a name/value map and rendering the
// Set-Cookie response header that carries the session token.
//
// Parsing is intentionally forgiving. Real-world Cookie headers arrive
// malformed more often than the RFC admits, so unparseable entries are
// dropped instead of failing the request:
//
//	values := cookie.Parse(r.Header.Get("Cookie"))
//	token := values[cookie.SessionCookieName]
package cookie
