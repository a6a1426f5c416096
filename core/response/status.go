package response

import "strconv"

// statusLines holds canonical reason phrases for the codes the framework
// itself produces. Anything else passes through with a generic phrase.
var statusLines = map[int]string{
	200: "200 OK",
	206: "206 Partial Content",
	302: "302 Found",
	403: "403 Forbidden",
	404: "404 Not Found",
	500: "500 Internal Server Error",
}

// StatusLine returns the status line text for code, e.g. "404 Not Found".
func StatusLine(code int) string {
	if line, ok := statusLines[code]; ok {
		return line
	}
	return strconv.Itoa(code) + " OK"
}
