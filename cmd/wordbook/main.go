package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordbook/internal/config"
	"github.com/aliskhannn/wordbook/internal/delivery/web"
	"github.com/aliskhannn/wordbook/internal/infra/docstore"
	"github.com/aliskhannn/wordbook/internal/logger"
	"github.com/aliskhannn/wordbook/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the shared document collection once; every request reuses it.
	store, err := docstore.Open(ctx, cfg.DB, lg)
	if err != nil {
		lg.Fatal("failed to open document store", zap.Error(err))
	}
	closeStore := func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			lg.Error("failed to close document store", zap.Error(err))
		}
	}
	defer closeStore()

	wordService := service.NewWordService(store, lg)

	handler, err := web.NewHandler(wordService, lg)
	if err != nil {
		// Fatal exits without running deferred calls.
		closeStore()
		lg.Fatal("failed to create http handler", zap.Error(err))
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: web.NewRouter(handler, web.RouterOptions{
			SecretKey: cfg.SecretKey,
			Secure:    cfg.IsProduction(),
			AccessLog: os.Stdout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("http server started", zap.String("addr", cfg.HTTP.Addr), zap.String("backend", store.Backend))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		lg.Info("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			lg.Error("http server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("http server shutdown", zap.Error(err))
	}
}
