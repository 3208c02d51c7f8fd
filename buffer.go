package mvc

import (
	"bytes"
	"net/http"
)

// responseBuffer is the http.ResponseWriter handed to controllers. Nothing
// reaches the client until the dispatch succeeds, so a failed request can
// still be answered with a clean 500.
type responseBuffer struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: make(http.Header)}
}

func (b *responseBuffer) Header() http.Header { return b.header }

func (b *responseBuffer) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *responseBuffer) statusOr(def int) int {
	if b.status == 0 {
		return def
	}
	return b.status
}

// flush copies headers, status, and body to w. If body is nil the buffered
// body is written.
func (b *responseBuffer) flush(w http.ResponseWriter, body []byte) {
	dst := w.Header()
	for k, vs := range b.header {
		dst[k] = append([]string(nil), vs...)
	}
	if body == nil {
		body = b.body.Bytes()
	}
	w.WriteHeader(b.statusOr(http.StatusOK))
	//nolint:errcheck,gosec // best-effort after WriteHeader
	w.Write(body)
}
