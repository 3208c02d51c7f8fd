package mvc_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/mvc"
)

type greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

type frenchGreeter struct{}

func (frenchGreeter) Greet() string { return "bonjour" }

func newScope(c *mvc.Container) *mvc.Scope {
	return c.NewScope(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup   func(c *mvc.Container, s *mvc.Scope)
		want    string
		wantErr error
	}{
		"value from parent": {
			setup: func(c *mvc.Container, _ *mvc.Scope) {
				mvc.Value[greeter](c, englishGreeter{})
			},
			want: "hello",
		},
		"provider from parent": {
			setup: func(c *mvc.Container, _ *mvc.Scope) {
				mvc.Provide(c, func(*mvc.Scope) (greeter, error) { return frenchGreeter{}, nil })
			},
			want: "bonjour",
		},
		"scope binding shadows parent": {
			setup: func(c *mvc.Container, s *mvc.Scope) {
				mvc.Value[greeter](c, englishGreeter{})
				mvc.Bind[greeter](s, frenchGreeter{})
			},
			want: "bonjour",
		},
		"scope provider shadows parent": {
			setup: func(c *mvc.Container, s *mvc.Scope) {
				mvc.Value[greeter](c, englishGreeter{})
				mvc.BindFunc(s, func(*mvc.Scope) (greeter, error) { return frenchGreeter{}, nil })
			},
			want: "bonjour",
		},
		"later registration replaces earlier": {
			setup: func(c *mvc.Container, _ *mvc.Scope) {
				mvc.Provide(c, func(*mvc.Scope) (greeter, error) { return frenchGreeter{}, nil })
				mvc.Value[greeter](c, englishGreeter{})
			},
			want: "hello",
		},
		"missing binding": {
			setup:   func(*mvc.Container, *mvc.Scope) {},
			wantErr: mvc.ErrNotProvided,
		},
		"provider error": {
			setup: func(c *mvc.Container, _ *mvc.Scope) {
				mvc.Provide(c, func(*mvc.Scope) (greeter, error) { return nil, errors.New("boom") })
			},
			wantErr: errors.New("boom"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := mvc.NewContainer()
			s := newScope(c)
			tc.setup(c, s)

			g, err := mvc.Resolve[greeter](s)
			if tc.wantErr != nil {
				require.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.Greet())
		})
	}
}

func TestResolve_cycle(t *testing.T) {
	t.Parallel()

	type a struct{}
	type b struct{}

	c := mvc.NewContainer()
	mvc.Provide(c, func(s *mvc.Scope) (*a, error) {
		_, err := mvc.Resolve[*b](s)
		return &a{}, err
	})
	mvc.Provide(c, func(s *mvc.Scope) (*b, error) {
		_, err := mvc.Resolve[*a](s)
		return &b{}, err
	})

	_, err := mvc.Resolve[*a](newScope(c))
	require.ErrorIs(t, err, mvc.ErrCycle)
}

func TestScope_doesNotMutateParent(t *testing.T) {
	t.Parallel()

	c := mvc.NewContainer()
	s := newScope(c)
	mvc.Bind[greeter](s, frenchGreeter{})

	_, err := mvc.Resolve[greeter](newScope(c))
	require.ErrorIs(t, err, mvc.ErrNotProvided)
}

func TestMustResolve_panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { mvc.MustResolve[greeter](newScope(mvc.NewContainer())) })
}

func TestBindRequest(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/hello", nil)
	s := mvc.NewContainer().NewScope(w, r)

	require.NoError(t, mvc.BindRequest().ComposeRequest(s))

	gotReq, err := mvc.Resolve[*http.Request](s)
	require.NoError(t, err)
	assert.Same(t, r, gotReq)

	gotW, err := mvc.Resolve[http.ResponseWriter](s)
	require.NoError(t, err)
	assert.Equal(t, w, gotW)

	ctx, err := mvc.Resolve[context.Context](s)
	require.NoError(t, err)
	assert.Equal(t, r.Context(), ctx)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	var order []string
	step := func(name string, err error) mvc.Composer {
		return mvc.ComposerFunc(func(*mvc.Scope) error {
			order = append(order, name)
			return err
		})
	}

	err := mvc.Compose(step("a", nil), nil, step("b", errors.New("stop")), step("c", nil)).
		ComposeRequest(newScope(mvc.NewContainer()))

	require.EqualError(t, err, "stop")
	assert.Equal(t, []string{"a", "b"}, order)
}
