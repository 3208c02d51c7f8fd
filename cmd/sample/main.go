// Command sample runs a small guestbook built from mvc controllers.
//
// Run:
//
//	go run ./cmd/sample -config sample.yaml
//
// Print the route table and exit:
//
//	go run ./cmd/sample -routes
//
// Then explore:
//
//	GET    http://localhost:8080/               templated home page
//	POST   http://localhost:8080/entries        sign the guestbook (form)
//	GET    http://localhost:8080/entries/{id}   templated entry page
//	DELETE http://localhost:8080/entries        clear (needs X-Admin-Token)
//	GET    http://localhost:8080/_routes.yaml   route table
package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/bjaus/mvc"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	configFlag := flag.String("config", "sample.yaml", "Path to the YAML config file")
	routesFlag := flag.Bool("routes", false, "Print the route table as YAML and exit")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.level()}))
	slog.SetDefault(logger)

	r, err := newRouter(cfg, logger, newGuestbook())
	if err != nil {
		logger.Error("router setup failed", "err", err)
		os.Exit(1)
	}

	if *routesFlag {
		if err := r.WriteRoutesYAML(os.Stdout); err != nil {
			logger.Error("write routes", "err", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting server", "addr", cfg.Addr)

	if err := r.ListenAndServe(ctx, cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
	}

	logger.Info("server stopped")
}

func newRouter(cfg config, logger *slog.Logger, book *guestbook) (*mvc.Router, error) {
	renderer, err := mvc.ParseTemplates(templateFS, nil, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := mvc.New(
		mvc.WithLogger(logger),
		mvc.WithRenderer(renderer),
	)

	r.Use(mvc.Recovery(logger))
	r.Use(mvc.AssignRequestID())
	r.Use(mvc.Logger(logger))
	r.Use(mvc.RateLimit(mvc.RateLimitConfig{
		Rate:  cfg.RateLimit.Rate,
		Burst: cfg.RateLimit.Burst,
	}))

	r.ServeRoutesYAML("/_routes.yaml")

	c := newContainer(cfg, logger, book)
	composer := mvc.Compose(mvc.BindRequest(), mvc.BindRequestID())

	mvc.RouteTo[*homeController](r, "/{$}", c, composer, mvc.WithTemplate("home.html"))
	mvc.RouteTo[*signController](r, "/entries", c, composer)
	mvc.RouteTo[*entryController](r, "/entries/{id}", c, composer, mvc.WithTemplate("entry.html"))
	mvc.RouteTo[*adminController](r, "/entries", c, composer)

	return r, nil
}

func newContainer(cfg config, logger *slog.Logger, book *guestbook) *mvc.Container {
	c := mvc.NewContainer()
	mvc.Value(c, book)
	mvc.Value(c, logger)
	mvc.Value(c, adminToken(cfg.AdminToken))

	mvc.Provide(c, func(s *mvc.Scope) (*homeController, error) {
		b, err := mvc.Resolve[*guestbook](s)
		if err != nil {
			return nil, err
		}
		id, err := mvc.Resolve[mvc.RequestID](s)
		return &homeController{book: b, requestID: id}, err
	})
	mvc.Provide(c, func(s *mvc.Scope) (*signController, error) {
		b, err := mvc.Resolve[*guestbook](s)
		if err != nil {
			return nil, err
		}
		l, err := mvc.Resolve[*slog.Logger](s)
		return &signController{book: b, logger: l}, err
	})
	mvc.Provide(c, func(s *mvc.Scope) (*entryController, error) {
		b, err := mvc.Resolve[*guestbook](s)
		return &entryController{book: b}, err
	})
	mvc.Provide(c, func(s *mvc.Scope) (*adminController, error) {
		b, err := mvc.Resolve[*guestbook](s)
		if err != nil {
			return nil, err
		}
		tok, err := mvc.Resolve[adminToken](s)
		return &adminController{book: b, token: tok}, err
	})

	return c
}
