package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freehost/internal/config"
	"freehost/internal/idtoken"
	"freehost/internal/observability/logging"
	"freehost/internal/observability/metrics"
	impl "freehost/internal/service/impl"
	"freehost/internal/store"
	httpx "freehost/internal/transport/http"
	"freehost/pkg/db"
)

func main() {
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "freehost",
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	gdb, err := db.Open(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("db open", "error", err)
		os.Exit(1)
	}
	if err := store.AutoMigrate(gdb); err != nil {
		logger.Error("automigrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	// The simulated Google OAuth tokens never leave this process, so an
	// ephemeral signer is enough.
	signer := idtoken.NewEphemeral("https://accounts.google.com")

	auth := impl.NewAuthServiceImpl(st, signer)
	sites := impl.NewSiteServiceImpl(st)
	files := impl.NewFileServiceImpl(st)
	publisher := impl.NewPublishServiceImpl(st)

	metrics.MustRegister("freehost")

	handler := httpx.NewRouter(auth, sites, files, publisher, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("freehost listening", "addr", srv.Addr, "db", cfg.DatabaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	slog.Info("stopped")
}
