package mvc

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"sync"
)

type providerFunc func(s *Scope) (any, error)

// Container holds application-wide bindings. Register everything at startup;
// request handling only reads from it, each request working in its own Scope.
type Container struct {
	mu        sync.RWMutex
	values    map[reflect.Type]any
	providers map[reflect.Type]providerFunc
}

// NewContainer creates an empty Container.
func NewContainer() *Container {
	return &Container{
		values:    make(map[reflect.Type]any),
		providers: make(map[reflect.Type]providerFunc),
	}
}

// Value binds a shared instance of T. Every scope resolves the same value.
func Value[T any](c *Container, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := reflect.TypeFor[T]()
	c.values[key] = v
	delete(c.providers, key)
}

// Provide binds a constructor for T. The constructor runs at most once per
// request scope; the instance is cached in that scope and never shared with
// other requests.
func Provide[T any](c *Container, fn func(s *Scope) (T, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := reflect.TypeFor[T]()
	c.providers[key] = func(s *Scope) (any, error) { return fn(s) }
	delete(c.values, key)
}

func (c *Container) lookup(key reflect.Type) (any, providerFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, ok := c.values[key]; ok {
		return v, nil, true
	}
	if p, ok := c.providers[key]; ok {
		return nil, p, true
	}
	return nil, nil, false
}

// NewScope creates a request scope parented to c.
func (c *Container) NewScope(w http.ResponseWriter, r *http.Request) *Scope {
	return &Scope{
		parent:    c,
		w:         w,
		r:         r,
		values:    make(map[reflect.Type]any),
		providers: make(map[reflect.Type]providerFunc),
		resolving: make(map[reflect.Type]bool),
	}
}

// Scope is a per-request child of a Container. Bindings made on a Scope and
// instances it constructs are visible only to that request. A Scope is not
// safe for concurrent use; it belongs to the goroutine serving its request.
type Scope struct {
	parent    *Container
	w         http.ResponseWriter
	r         *http.Request
	values    map[reflect.Type]any
	providers map[reflect.Type]providerFunc
	resolving map[reflect.Type]bool
}

// Request returns the request this scope serves.
func (s *Scope) Request() *http.Request { return s.r }

// ResponseWriter returns the writer controllers in this scope write to.
func (s *Scope) ResponseWriter() http.ResponseWriter { return s.w }

// Context returns the request context.
func (s *Scope) Context() context.Context { return s.r.Context() }

// Bind adds a request-local instance of T, shadowing any parent binding.
func Bind[T any](s *Scope, v T) {
	key := reflect.TypeFor[T]()
	s.values[key] = v
	delete(s.providers, key)
}

// BindFunc adds a request-local constructor for T, shadowing any parent
// binding. It runs at most once, on first resolution.
func BindFunc[T any](s *Scope, fn func(s *Scope) (T, error)) {
	key := reflect.TypeFor[T]()
	s.providers[key] = func(s *Scope) (any, error) { return fn(s) }
	delete(s.values, key)
}

// Resolve returns the instance of T visible from s. Scope bindings win over
// the parent container. Constructed instances are cached in s.
func Resolve[T any](s *Scope) (T, error) {
	var zero T
	key := reflect.TypeFor[T]()

	v, err := s.resolve(key)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok && v != nil {
		return zero, fmt.Errorf("%w: %s bound to %T", ErrNotProvided, key, v)
	}
	return out, nil
}

// MustResolve is like Resolve but panics on failure. Inside a controller
// lifecycle the panic becomes a 500 response.
func MustResolve[T any](s *Scope) T {
	v, err := Resolve[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

func (s *Scope) resolve(key reflect.Type) (any, error) {
	if v, ok := s.values[key]; ok {
		return v, nil
	}

	p, local := s.providers[key]
	if !local {
		v, pp, ok := s.parent.lookup(key)
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: %s", ErrNotProvided, key)
		case pp == nil:
			return v, nil
		}
		p = pp
	}

	if s.resolving[key] {
		return nil, fmt.Errorf("%w: %s", ErrCycle, key)
	}
	s.resolving[key] = true
	defer delete(s.resolving, key)

	v, err := p(s)
	if err != nil {
		return nil, fmt.Errorf("construct %s: %w", key, err)
	}
	s.values[key] = v
	return v, nil
}

// Composer adds request-specific bindings to a fresh Scope before the
// controller is resolved from it.
type Composer interface {
	ComposeRequest(s *Scope) error
}

// ComposerFunc adapts a function to Composer.
type ComposerFunc func(s *Scope) error

// ComposeRequest calls f.
func (f ComposerFunc) ComposeRequest(s *Scope) error { return f(s) }

// Compose runs composers in order and stops at the first error.
func Compose(composers ...Composer) Composer {
	return ComposerFunc(func(s *Scope) error {
		for _, c := range composers {
			if c == nil {
				continue
			}
			if err := c.ComposeRequest(s); err != nil {
				return err
			}
		}
		return nil
	})
}

// BindRequest returns a Composer that binds the request, the response writer,
// and the request context into the scope.
func BindRequest() Composer {
	return ComposerFunc(func(s *Scope) error {
		Bind(s, s.Request())
		Bind(s, s.ResponseWriter())
		Bind(s, s.Context())
		return nil
	})
}
