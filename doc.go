// Package mvc routes HTTP requests to controller types. A controller opts in
// to HTTP verbs by implementing small single-method interfaces (GetHandler,
// PostHandler, ...), and the type system decides at registration time which
// routes exist:
//
//	type Home struct {
//	    mvc.Base
//	    greeter *Greeter
//	}
//
//	func (h *Home) Get(w http.ResponseWriter, r *http.Request) (mvc.Result, error) {
//	    return mvc.Continue(mvc.Model{"greeting": h.greeter.Hello()}), nil
//	}
//
// Each request gets its own resolution Scope, a child of the application
// Container. A Composer adds request-specific bindings before the controller
// is resolved:
//
//	c := mvc.NewContainer()
//	mvc.Value(c, greeter)
//	mvc.Provide(c, func(s *mvc.Scope) (*Home, error) {
//	    g, err := mvc.Resolve[*Greeter](s)
//	    return &Home{greeter: g}, err
//	})
//
//	r := mvc.New(mvc.WithRenderer(renderer))
//	mvc.RouteTo[*Home](r, "/", c, mvc.BindRequest(), mvc.WithTemplate("home.html"))
//
// Every request runs Before, then the verb method, then After. Before returning
// false, or the verb method returning Stop, ends the request without running
// After. Any failure along the way (composition, resolution, a missing verb,
// a handler error or panic, a render error) produces a bare 500 response with
// the body "Server Error"; controller output is buffered so a failed request
// never leaks a partial body.
package mvc
