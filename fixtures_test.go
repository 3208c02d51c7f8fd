package mvc_test

import (
	"errors"
	"io"
	"net/http"

	"github.com/bjaus/mvc"
)

// probe scripts a pageController and records what ran.
type probe struct {
	deny    bool
	result  mvc.Result
	err     error
	panicIn string
	status  int
	body    string
	calls   []string
}

type pageController struct {
	p *probe
}

func (c *pageController) Before(http.ResponseWriter, *http.Request) bool {
	c.p.calls = append(c.p.calls, "before")
	if c.p.panicIn == "before" {
		panic("before exploded")
	}
	return !c.p.deny
}

func (c *pageController) After(http.ResponseWriter, *http.Request) {
	c.p.calls = append(c.p.calls, "after")
	if c.p.panicIn == "after" {
		panic("after exploded")
	}
}

func (c *pageController) Get(w http.ResponseWriter, _ *http.Request) (mvc.Result, error) {
	c.p.calls = append(c.p.calls, "get")
	if c.p.status != 0 {
		w.WriteHeader(c.p.status)
	}
	if c.p.body != "" {
		_, _ = io.WriteString(w, c.p.body)
	}
	if c.p.panicIn == "get" {
		panic(errors.New("get exploded"))
	}
	return c.p.result, c.p.err
}

func newPageContainer(p *probe) *mvc.Container {
	c := mvc.NewContainer()
	mvc.Value(c, p)
	mvc.Provide(c, func(s *mvc.Scope) (*pageController, error) {
		p, err := mvc.Resolve[*probe](s)
		return &pageController{p: p}, err
	})
	return c
}

// postOnly answers POST and nothing else.
type postOnly struct {
	mvc.Base
}

func (postOnly) Post(w http.ResponseWriter, _ *http.Request) (mvc.Result, error) {
	w.WriteHeader(http.StatusCreated)
	_, _ = io.WriteString(w, "created")
	return mvc.Flag(true), nil
}

// crud answers several verbs.
type crud struct {
	mvc.Base
}

func (crud) Get(w http.ResponseWriter, _ *http.Request) (mvc.Result, error) {
	_, _ = io.WriteString(w, "get")
	return mvc.Flag(true), nil
}

func (crud) Put(w http.ResponseWriter, _ *http.Request) (mvc.Result, error) {
	_, _ = io.WriteString(w, "put")
	return mvc.Flag(true), nil
}

func (crud) Delete(w http.ResponseWriter, _ *http.Request) (mvc.Result, error) {
	w.WriteHeader(http.StatusNoContent)
	return mvc.Flag(true), nil
}

// lookalike has methods named like verbs whose signatures do not match.
type lookalike struct {
	mvc.Base
}

func (lookalike) Get(*http.Request) string { return "" }

func (lookalike) Post(w http.ResponseWriter, r *http.Request) (bool, error) { return true, nil }

func (lookalike) Put(r *http.Request, w http.ResponseWriter) (mvc.Result, error) {
	return mvc.Flag(true), nil
}

// hooksOnly implements the lifecycle and no verb.
type hooksOnly struct {
	mvc.Base
}

// pointerVerbs implements Get on the pointer receiver only.
type pointerVerbs struct {
	mvc.Base
}

func (*pointerVerbs) Get(http.ResponseWriter, *http.Request) (mvc.Result, error) {
	return mvc.Flag(true), nil
}

func valueContainer[T any](v T) *mvc.Container {
	c := mvc.NewContainer()
	mvc.Value(c, v)
	return c
}
