// Package app wires the POS server together.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/abdalahsamh/New-cashir/internal/catalog"
	"github.com/abdalahsamh/New-cashir/internal/handler"
	"github.com/abdalahsamh/New-cashir/internal/history"
	"github.com/abdalahsamh/New-cashir/internal/invoice"
	"github.com/abdalahsamh/New-cashir/internal/receipt"
	"github.com/abdalahsamh/New-cashir/internal/station"
	"github.com/abdalahsamh/New-cashir/internal/storage"
	"github.com/abdalahsamh/New-cashir/pkg/health"
	"github.com/abdalahsamh/New-cashir/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr), zap.String("data_dir", cfg.DataDir))

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return errors.Wrap(err, "open data dir")
	}

	// Domain services, all over the same slot store.
	cat := catalog.New(store)
	counter := station.NewCounter(store)
	log := history.NewLog(store)
	factory := invoice.NewFactory(store, log)

	// Seed the catalog so the first price edit has something to write to.
	if _, err := cat.Initialize(ctx); err != nil {
		return errors.Wrap(err, "initialize catalog")
	}

	healthSvc := health.New()
	healthSvc.AddCheck("data_dir", health.DirWritableCheck(cfg.DataDir))
	healthSvc.SetReady(true)

	h := handler.New(cat, counter, factory, log, receipt.Header{
		ShopName: cfg.Shop.Name,
		Phones:   cfg.Shop.Phones,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", h.Routes())

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins: cfg.CORS.Origins,
				AllowHeaders: []string{"Content-Type"},
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument("pos-api", m.MeterProvider()),
			httpmiddleware.LogRequests(),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
