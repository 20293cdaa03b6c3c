package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"textforge/internal/registry"
	"textforge/internal/server"
	"textforge/pkg/config"
	"textforge/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	tools := registry.NewDefaultToolRegistry()
	functions := registry.NewDefaultFunctionRegistry()

	// Fail fast on catalog/registry drift instead of discovering it on the
	// first request for a broken tool.
	for _, t := range tools.ListAllTools() {
		if !functions.Has(t.TransformFn) {
			log.Fatal("tool declares an unregistered transform function",
				zap.String("tool", t.ID), zap.String("transformFn", t.TransformFn))
		}
	}

	log.Info("Starting textforge API server",
		zap.String("port", cfg.Port),
		zap.Int("tools", tools.TotalToolCount()),
	)

	srv := server.New(cfg, log, tools, functions)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
	log.Info("Server stopped")
}
