package mvc

import (
	"net/http"
	"reflect"
	"strings"
)

// Controller is the lifecycle every routed type implements. Before runs
// ahead of the verb method and may veto it by returning false. After runs
// once the verb method lets the request continue. Embed Base for the
// permissive defaults.
type Controller interface {
	Before(w http.ResponseWriter, r *http.Request) bool
	After(w http.ResponseWriter, r *http.Request)
}

// Base is an embeddable Controller whose Before always proceeds and whose
// After does nothing.
type Base struct{}

// Before returns true.
func (Base) Before(http.ResponseWriter, *http.Request) bool { return true }

// After does nothing.
func (Base) After(http.ResponseWriter, *http.Request) {}

// GetHandler is implemented by controllers that answer GET.
type GetHandler interface {
	Get(w http.ResponseWriter, r *http.Request) (Result, error)
}

// PostHandler is implemented by controllers that answer POST.
type PostHandler interface {
	Post(w http.ResponseWriter, r *http.Request) (Result, error)
}

// PutHandler is implemented by controllers that answer PUT.
type PutHandler interface {
	Put(w http.ResponseWriter, r *http.Request) (Result, error)
}

// PatchHandler is implemented by controllers that answer PATCH.
type PatchHandler interface {
	Patch(w http.ResponseWriter, r *http.Request) (Result, error)
}

// DeleteHandler is implemented by controllers that answer DELETE.
type DeleteHandler interface {
	Delete(w http.ResponseWriter, r *http.Request) (Result, error)
}

// HeadHandler is implemented by controllers that answer HEAD.
type HeadHandler interface {
	Head(w http.ResponseWriter, r *http.Request) (Result, error)
}

// OptionsHandler is implemented by controllers that answer OPTIONS.
type OptionsHandler interface {
	Options(w http.ResponseWriter, r *http.Request) (Result, error)
}

// VerbFunc invokes one verb method on a resolved controller.
type VerbFunc[C Controller] func(ctrl C, w http.ResponseWriter, r *http.Request) (Result, error)

// verb pairs a lower-cased HTTP method with its dispatch closure.
type verb[C Controller] struct {
	name string
	call VerbFunc[C]
}

// implements reports whether the static type C satisfies I. It works for
// interface and concrete controller types alike.
func implements[C, I any]() bool {
	return reflect.TypeFor[C]().Implements(reflect.TypeFor[I]())
}

// verbs returns the verb methods C implements, in a fixed order.
func verbs[C Controller]() []verb[C] {
	var out []verb[C]

	if implements[C, GetHandler]() {
		out = append(out, verb[C]{"get", func(c C, w http.ResponseWriter, r *http.Request) (Result, error) {
			return any(c).(GetHandler).Get(w, r)
		}})
	}
	if implements[C, PostHandler]() {
		out = append(out, verb[C]{"post", func(c C, w http.ResponseWriter, r *http.Request) (Result, error) {
			return any(c).(PostHandler).Post(w, r)
		}})
	}
	if implements[C, PutHandler]() {
		out = append(out, verb[C]{"put", func(c C, w http.ResponseWriter, r *http.Request) (Result, error) {
			return any(c).(PutHandler).Put(w, r)
		}})
	}
	if implements[C, PatchHandler]() {
		out = append(out, verb[C]{"patch", func(c C, w http.ResponseWriter, r *http.Request) (Result, error) {
			return any(c).(PatchHandler).Patch(w, r)
		}})
	}
	if implements[C, DeleteHandler]() {
		out = append(out, verb[C]{"delete", func(c C, w http.ResponseWriter, r *http.Request) (Result, error) {
			return any(c).(DeleteHandler).Delete(w, r)
		}})
	}
	if implements[C, HeadHandler]() {
		out = append(out, verb[C]{"head", func(c C, w http.ResponseWriter, r *http.Request) (Result, error) {
			return any(c).(HeadHandler).Head(w, r)
		}})
	}
	if implements[C, OptionsHandler]() {
		out = append(out, verb[C]{"options", func(c C, w http.ResponseWriter, r *http.Request) (Result, error) {
			return any(c).(OptionsHandler).Options(w, r)
		}})
	}

	return out
}

// verbTable indexes verbs by lower-cased method name.
func verbTable[C Controller](vs []verb[C]) map[string]VerbFunc[C] {
	table := make(map[string]VerbFunc[C], len(vs))
	for _, v := range vs {
		table[v.name] = v.call
	}
	return table
}

// Verbs lists the lower-cased HTTP methods C answers.
func Verbs[C Controller]() []string {
	vs := verbs[C]()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.name
	}
	return names
}

func httpMethod(name string) string { return strings.ToUpper(name) }
