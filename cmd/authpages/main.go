// Command authpages serves the auth, account and organization pages.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackielii/authpages"
	"github.com/jackielii/authpages/chirouter"
	"github.com/jackielii/authpages/plugins"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// a missing .env is fine, the environment is used as is
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "authpages:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "authpages",
		Usage: "serve auth, account and organization pages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file", EnvVars: []string{"AUTHPAGES_CONFIG"}},
			&cli.StringFlag{Name: "addr", Usage: "listen address", EnvVars: []string{"AUTHPAGES_ADDR"}},
			&cli.StringFlag{Name: "site-url", Usage: "public base URL of the site", EnvVars: []string{"AUTHPAGES_SITE_URL"}},
			&cli.StringFlag{Name: "base-path", Usage: "path the pages are mounted under", EnvVars: []string{"AUTHPAGES_BASE_PATH"}},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", EnvVars: []string{"AUTHPAGES_LOG_LEVEL"}},
			&cli.StringFlag{Name: "log-format", Usage: "text or json", EnvVars: []string{"AUTHPAGES_LOG_FORMAT"}},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: serveAction,
			},
			{
				Name:   "routes",
				Usage:  "print the route table",
				Action: routesAction,
			},
			{
				Name:   "sitemap",
				Usage:  "print the sitemap XML",
				Action: sitemapAction,
			},
		},
	}
}

// configFromContext loads the config file and applies flag and env overrides.
func configFromContext(c *cli.Context) (Config, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return Config{}, err
	}
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.IsSet("site-url") {
		cfg.SiteBaseURL = c.String("site-url")
	}
	if c.IsSet("base-path") {
		cfg.SiteBasePath = c.String("base-path")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	cfg.setDefaults()
	return cfg, nil
}

func routesAction(c *cli.Context) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, authpages.PrintRoutes(plugins.All(cfg.pluginConfig())...))
	return err
}

func sitemapAction(c *cli.Context) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	entries, err := authpages.CollectSitemap(c.Context, plugins.All(cfg.pluginConfig())...)
	if err != nil {
		return err
	}
	return authpages.WriteSitemap(c.App.Writer, entries)
}

func serveAction(c *cli.Context) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(c.App.ErrWriter, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	handler, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "site", cfg.SiteBaseURL+cfg.SiteBasePath)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newHandler mounts all plugins on a chi router and serves /sitemap.xml.
func newHandler(cfg Config, logger *slog.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	all := plugins.All(cfg.pluginConfig())
	pages := authpages.New(
		authpages.WithLogger(logger),
		authpages.WithMiddlewares(logRequests(logger)),
	)
	if err := pages.Mount(chirouter.NewChiRouter(r), cfg.SiteBasePath, all...); err != nil {
		return nil, fmt.Errorf("mount plugins: %w", err)
	}
	r.Method(http.MethodGet, "/sitemap.xml", pages.SitemapHandler(all...))
	return r, nil
}

func logRequests(logger *slog.Logger) authpages.MiddlewareFunc {
	return func(next http.Handler, node *authpages.RouteNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.DebugContext(r.Context(), "page served",
				"plugin", node.Plugin,
				"route", node.Key,
				"path", r.URL.Path,
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(start))
		})
	}
}
