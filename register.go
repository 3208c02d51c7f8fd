package mvc

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
)

// Registrar is the interface accepted by RouteTo.
// Both *Router and *Group implement it.
type Registrar interface {
	addRoute(ri routeInfo)
	getRenderer() Renderer
	getLogger() *slog.Logger
	routeMiddleware() []Middleware
}

func (r *Router) getRenderer() Renderer         { return r.renderer }
func (r *Router) getLogger() *slog.Logger       { return r.logger }
func (r *Router) routeMiddleware() []Middleware { return nil }

// RouteTo registers one route at pattern for every verb interface C
// implements. Requests are dispatched to an instance of C resolved from a
// request scope under container, after composer has populated that scope.
//
// A controller that implements no verb interface registers nothing.
// RouteTo panics if a template is requested on a registrar without a
// Renderer.
func RouteTo[C Controller](reg Registrar, pattern string, container *Container, composer Composer, opts ...RouteOption) {
	base := routeInfo{
		pattern:    pattern,
		controller: reflect.TypeFor[C]().String(),
	}
	for _, opt := range opts {
		opt(&base)
	}

	renderer := reg.getRenderer()
	if base.template != "" && renderer == nil {
		panic(fmt.Sprintf("mvc: route %s uses template %q but no Renderer is configured", pattern, base.template))
	}

	logger := reg.getLogger()

	vs := verbs[C]()
	if len(vs) == 0 {
		logger.Debug("controller has no verb methods", "pattern", pattern, "controller", base.controller)
		return
	}

	d := newDispatcher(container, composer, vs)
	routeMW := slices.Concat(reg.routeMiddleware(), base.middleware)

	for _, v := range vs {
		ri := base
		ri.method = httpMethod(v.name)
		ri.handler = &routeHandler{
			dispatch:   d.dispatch,
			template:   ri.template,
			renderer:   renderer,
			controller: ri.controller,
			logger:     logger,
		}

		for i := len(routeMW) - 1; i >= 0; i-- {
			ri.handler = routeMW[i](ri.handler)
		}

		reg.addRoute(ri)
		logger.Debug("route registered",
			"method", ri.method,
			"pattern", pattern,
			"controller", ri.controller,
			"template", ri.template,
		)
	}
}
