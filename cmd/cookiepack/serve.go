package main

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cookiepack"
	"github.com/dmitrymomot/cookiepack/middlewares"
	"github.com/dmitrymomot/cookiepack/pkg/config"
	"github.com/dmitrymomot/cookiepack/pkg/health"
	"github.com/dmitrymomot/cookiepack/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a cookie-packing reverse proxy in front of UPSTREAM_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := defaultConfig()
			if err := config.Load(&cfg, config.WithFile(configPath)); err != nil {
				return err
			}

			log := logger.New(cfg.Log,
				middlewares.RequestIDExtractor(),
				cookiepack.JarSizeExtractor(),
			)

			handler, err := newHandler(cfg, log)
			if err != nil {
				return err
			}

			return cookiepack.Run(handler,
				cookiepack.Address(cfg.Address),
				cookiepack.Logger(log),
				cookiepack.ShutdownTimeout(cfg.ShutdownTimeout),
				cookiepack.WithContext(cmd.Context()),
				cookiepack.ShutdownHook(logger.Flush),
			)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}

// newHandler builds the proxy router: the probes answer directly, everything
// else goes through the packer to the upstream.
func newHandler(cfg Config, log *slog.Logger) (http.Handler, error) {
	target, err := cfg.upstreamURL()
	if err != nil {
		return nil, err
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorLog: slog.NewLogLogger(log.Handler(), slog.LevelError),
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "upstream request failed",
				slog.String("upstream", target.Host),
				slog.Any("error", err),
			)
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	opts := append(cfg.packerOptions(), cookiepack.WithLogger(log))
	packer := cookiepack.New(opts...)

	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Recover(middlewares.WithRecoverLogger(log)),
	)

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(health.Checks{
		"upstream": health.HTTPCheck(nil, target.String()),
	}, health.WithLogger(log)))

	r.Group(func(r chi.Router) {
		r.Use(packer.Handler)
		r.Handle("/*", proxy)
	})

	return r, nil
}
