package mvc

import (
	"encoding/json"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"
)

// routeTable is the document written by WriteRoutes and WriteRoutesYAML.
type routeTable struct {
	Routes []RouteInfo `json:"routes" yaml:"routes"`
}

// ServeRoutes registers a GET handler at the given path that serves the
// controller route table as JSON.
func (r *Router) ServeRoutes(pattern string) {
	r.mux.HandleFunc("GET "+pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort after WriteHeader
		r.WriteRoutes(w)
	})
}

// ServeRoutesYAML registers a GET handler at the given path that serves the
// controller route table as YAML.
func (r *Router) ServeRoutesYAML(pattern string) {
	r.mux.HandleFunc("GET "+pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		//nolint:errcheck,gosec // best-effort after WriteHeader
		r.WriteRoutesYAML(w)
	})
}

// WriteRoutes writes the route table as indented JSON to w.
func (r *Router) WriteRoutes(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(routeTable{Routes: r.Routes()})
}

// WriteRoutesYAML writes the route table as YAML to w.
func (r *Router) WriteRoutesYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(routeTable{Routes: r.Routes()}); err != nil {
		return err
	}
	return enc.Close()
}
