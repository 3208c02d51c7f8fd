package mvc

import "net/http"

// Test-only exports for internal functions.
var (
	Interpret        = interpret
	WriteServerError = writeServerError
)

// NewResponseBuffer exposes the dispatch buffer for tests.
func NewResponseBuffer() http.ResponseWriter { return newResponseBuffer() }

// FlushBuffer copies a buffer created by NewResponseBuffer to w.
func FlushBuffer(b http.ResponseWriter, w http.ResponseWriter, body []byte) {
	b.(*responseBuffer).flush(w, body)
}
