package mvc

import (
	"net/http"
	"strings"
)

// routeInfo holds metadata for a registered route. It is fixed at
// registration and never changes afterwards.
type routeInfo struct {
	method     string
	pattern    string
	controller string
	template   string
	middleware []Middleware

	handler http.Handler
}

// RouteInfo describes a registered route.
type RouteInfo struct {
	Method     string `json:"method" yaml:"method"`
	Pattern    string `json:"pattern" yaml:"pattern"`
	Controller string `json:"controller" yaml:"controller"`
	Template   string `json:"template,omitempty" yaml:"template,omitempty"`
}

func (ri routeInfo) public() RouteInfo {
	return RouteInfo{
		Method:     ri.method,
		Pattern:    ri.pattern,
		Controller: ri.controller,
		Template:   ri.template,
	}
}

// RouteOption configures the routes registered by one RouteTo call.
type RouteOption func(*routeInfo)

// WithTemplate renders the handler's model with the named template instead
// of sending the body the controller wrote. A blank name leaves the route
// untemplated.
func WithTemplate(name string) RouteOption {
	return func(ri *routeInfo) {
		ri.template = strings.TrimSpace(name)
	}
}

// WithMiddleware wraps the registered routes in mw, innermost last.
func WithMiddleware(mw ...Middleware) RouteOption {
	return func(ri *routeInfo) {
		ri.middleware = append(ri.middleware, mw...)
	}
}
