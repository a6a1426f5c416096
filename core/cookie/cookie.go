package cookie

import "strings"

// SessionCookieName is the cookie under which the session token travels.
const SessionCookieName = "session_id"

// Parse decodes a raw Cookie request header into a name/value map.
// Entries are separated by ';', names from values by the first '='.
// Entries without '=' are dropped, surrounding whitespace is trimmed,
// and the last occurrence of a duplicate name wins. Parse never fails;
// malformed input yields a partial or empty map.
func Parse(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}
	for entry := range strings.SplitSeq(header, ";") {
		entry = strings.TrimSpace(entry)
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		cookies[name] = value
	}
	return cookies
}

// SetCookie renders the Set-Cookie header value carrying the session token.
// The attributes are fixed: the cookie is host-wide, unreadable from script,
// and never sent cross-site.
func SetCookie(sessionToken string) string {
	return SessionCookieName + "=" + sessionToken + "; Path=/; HttpOnly; SameSite=Strict"
}
