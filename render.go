package mvc

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
)

// Renderer turns a model into a response body using a named template.
type Renderer interface {
	Render(w io.Writer, name string, model Model) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, name string, model Model) error

// Render calls f.
func (f RendererFunc) Render(w io.Writer, name string, model Model) error {
	return f(w, name, model)
}

// TemplateRenderer renders html/template templates by name.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer wraps an already parsed template set.
func NewTemplateRenderer(t *template.Template) *TemplateRenderer {
	return &TemplateRenderer{tmpl: t}
}

// ParseTemplates parses the templates in fsys matching patterns. Templates are
// addressed by their base file name unless they define their own names.
func ParseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*TemplateRenderer, error) {
	if len(patterns) == 0 {
		patterns = []string{"*.html"}
	}
	t, err := template.New("").Funcs(funcs).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{tmpl: t}, nil
}

// Render executes the template called name with model as its data.
func (t *TemplateRenderer) Render(w io.Writer, name string, model Model) error {
	if t.tmpl.Lookup(name) == nil {
		return fmt.Errorf("template %q not found", name)
	}
	return t.tmpl.ExecuteTemplate(w, name, model)
}

// routeHandler is the http.Handler registered for one verb of one
// controller. Whether it renders a template is fixed when it is built.
type routeHandler struct {
	dispatch   func(w http.ResponseWriter, r *http.Request) (Model, error)
	template   string
	renderer   Renderer
	controller string
	logger     *slog.Logger
}

func (h *routeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	notePattern(r)
	buf := newResponseBuffer()

	model, err := h.dispatch(buf, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if h.template == "" {
		buf.flush(w, nil)
		return
	}

	var out bytes.Buffer
	if err := h.renderer.Render(&out, h.template, model); err != nil {
		h.fail(w, r, fmt.Errorf("%w %s: %w", ErrRender, h.template, err))
		return
	}

	if buf.header.Get("Content-Type") == "" {
		buf.header.Set("Content-Type", "text/html; charset=utf-8")
	}
	buf.header.Del("Content-Length")
	buf.flush(w, out.Bytes())
}

func (h *routeHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("route", r.Pattern),
		slog.String("controller", h.controller),
		slog.String("err", err.Error()),
	}
	if id := GetRequestID(r); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if pe, ok := asPanic(err); ok {
		attrs = append(attrs, slog.String("stack", string(pe.Stack)))
	}

	h.logger.LogAttrs(r.Context(), slog.LevelError, "dispatch failed", attrs...)
	writeServerError(w)
}
