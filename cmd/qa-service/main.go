package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"qa-platform/internal/config"
	"qa-platform/internal/dataset"
	"qa-platform/internal/httpapi"
	"qa-platform/internal/observability"
	"qa-platform/internal/platform/logger"
	"qa-platform/internal/question"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: config:", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Server.Addr, "HTTP listen address")
	dataPath := flag.String("data", cfg.Dataset.Path, "path to the question source document (.json or .yaml)")
	flag.Parse()

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	records, err := dataset.LoadFile(*dataPath, dataset.WithWarnFunc(log.Warn))
	if err != nil {
		log.Fatal("failed to load questions", "path", *dataPath, "error", err)
	}
	bank := question.NewBank(records)
	log.Info("questions loaded",
		"path", *dataPath,
		"questions", bank.Len(),
		"categories", len(bank.Categories()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitTracing(ctx, log, cfg.Tracing)

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	routerCfg := httpapi.RouterConfig{
		Log:          log,
		AllowOrigins: cfg.Server.AllowOrigins,
	}
	if cfg.Tracing.Enabled {
		routerCfg.TracingService = cfg.Tracing.ServiceName
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(bank, routerCfg),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("qa-service listening", "addr", *addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		log.Info("qa-service shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracing(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server failed", "error", err)
	}
}
