package mvc

import (
	"errors"
	"fmt"
	"net/http"
)

// ServerErrorBody is the fixed body of every failed dispatch.
const ServerErrorBody = "Server Error"

// Sentinel errors for request dispatch.
var (
	ErrNotProvided = errors.New("no binding")
	ErrCycle       = errors.New("dependency cycle")
	ErrCompose     = errors.New("compose request")
	ErrResolve     = errors.New("resolve controller")
	ErrNoHandler   = errors.New("no verb handler")
	ErrHandler     = errors.New("handler")
	ErrRender      = errors.New("render")
)

// PanicError is returned by Dispatch when a hook, handler, or composer
// panics.
type PanicError struct {
	Value any
	Stack []byte
}

// Error describes the recovered value.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it was an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// writeServerError writes the fixed 500 response. No error detail reaches
// the client.
func writeServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusInternalServerError)
	//nolint:errcheck,gosec // best-effort after WriteHeader
	w.Write([]byte(ServerErrorBody))
}

func asPanic(err error) (*PanicError, bool) {
	var pe *PanicError
	ok := errors.As(err, &pe)
	return pe, ok
}
