package mvc

import (
	"log/slog"
	"slices"
)

// Group is a collection of routes under a shared prefix with shared middleware.
type Group struct {
	router     *Router
	prefix     string
	middleware []Middleware
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithGroupMiddleware adds middleware to the group.
func WithGroupMiddleware(mw ...Middleware) GroupOption {
	return func(g *Group) {
		g.middleware = append(g.middleware, mw...)
	}
}

// Group creates a new route group with the given prefix and options.
func (r *Router) Group(prefix string, opts ...GroupOption) *Group {
	g := &Group{
		router: r,
		prefix: prefix,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Group creates a nested group. The prefix and middleware of g apply first.
func (g *Group) Group(prefix string, opts ...GroupOption) *Group {
	child := &Group{
		router:     g.router,
		prefix:     g.prefix + prefix,
		middleware: slices.Clone(g.middleware),
	}
	for _, opt := range opts {
		opt(child)
	}
	return child
}

// addRoute implements Registrar for Group.
func (g *Group) addRoute(ri routeInfo) {
	ri.pattern = g.prefix + ri.pattern
	g.router.addRoute(ri)
}

func (g *Group) getRenderer() Renderer { return g.router.renderer }

func (g *Group) getLogger() *slog.Logger { return g.router.logger }

func (g *Group) routeMiddleware() []Middleware { return g.middleware }
