package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/retail-tools/ledger-atlas/pkg/export"
	reporthandlers "github.com/retail-tools/ledger-atlas/pkg/handlers/report"
	ledgermiddleware "github.com/retail-tools/ledger-atlas/pkg/server/middleware"
	"github.com/retail-tools/ledger-atlas/pkg/services/report"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reports   report.Service
	Formatter *export.Formatter
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := reporthandlers.NewHandler(config.Dependencies.Reports, config.Dependencies.Formatter)

	router := chi.NewRouter()

	router.Use(ledgermiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/templates", handler.ListTemplates)
		r.Get("/catalog/{source}", handler.GetCatalog)
		r.Post("/reports/run", handler.RunReport)
		r.Post("/reports/export", handler.ExportReport)
		r.Get("/metrics/forecast", handler.GetForecast)
		r.Get("/metrics/clv", handler.GetLifetimeValue)
		r.Get("/metrics/turnover", handler.GetTurnover)
		r.Get("/metrics/kpi", handler.GetKPI)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		timeout := w.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
