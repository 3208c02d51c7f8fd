package mvc

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
)

// dispatcher runs the controller lifecycle for one registered controller
// type. The verb table is built once, at registration.
type dispatcher[C Controller] struct {
	parent   *Container
	composer Composer
	table    map[string]VerbFunc[C]
}

func newDispatcher[C Controller](parent *Container, composer Composer, vs []verb[C]) *dispatcher[C] {
	return &dispatcher[C]{
		parent:   parent,
		composer: composer,
		table:    verbTable(vs),
	}
}

// Dispatch runs one request through a controller of type C: it opens a
// request scope under parent, lets composer bind request-specific values,
// resolves C, and runs Before, the verb method matching r.Method, and After.
//
// The returned model is empty unless the verb method continued. On error the
// model is always empty; w may hold partial output, so callers that need a
// clean failure response should pass a buffer.
func Dispatch[C Controller](w http.ResponseWriter, r *http.Request, parent *Container, composer Composer) (Model, error) {
	return newDispatcher(parent, composer, verbs[C]()).dispatch(w, r)
}

func (d *dispatcher[C]) dispatch(w http.ResponseWriter, r *http.Request) (model Model, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			model = Model{}
			err = &PanicError{Value: rec, Stack: debug.Stack()}
		}
	}()

	scope := d.parent.NewScope(w, r)

	if d.composer != nil {
		if err := d.composer.ComposeRequest(scope); err != nil {
			return Model{}, fmt.Errorf("%w: %w", ErrCompose, err)
		}
	}

	ctrl, err := Resolve[C](scope)
	if err != nil {
		return Model{}, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	if !ctrl.Before(w, r) {
		return Model{}, nil
	}

	call, ok := d.table[strings.ToLower(r.Method)]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", ErrNoHandler, r.Method)
	}

	res, err := call(ctrl, w, r)
	if err != nil {
		return Model{}, fmt.Errorf("%w: %w", ErrHandler, err)
	}

	cont, m := interpret(res)
	if !cont {
		return Model{}, nil
	}

	ctrl.After(w, r)
	return m, nil
}
