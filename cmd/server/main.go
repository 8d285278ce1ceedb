package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stormerake/wayfinder/internal/api"
	"github.com/stormerake/wayfinder/internal/config"
	"github.com/stormerake/wayfinder/internal/engine"
	"github.com/stormerake/wayfinder/internal/problem"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cfgPath := flag.String("config", "configs/problems.yaml", "Path to problems YAML config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()

	// ── Compile problem catalog ───────────────────────────────────────────────
	cat, err := problem.BuildCatalog(cfg)
	if err != nil {
		slog.Error("failed to build problem catalog", "err", err)
		os.Exit(1)
	}
	slog.Info("catalog built", "problems", cat.Len())

	// ── Engine ────────────────────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := engine.New(ctx, cat, cfg.Engine)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	// The loader only hands out validated configs, so the callback just
	// recompiles and swaps.
	loader.OnChange(func(newCfg *config.Config) {
		newCat, err := problem.BuildCatalog(newCfg)
		if err != nil {
			slog.Warn("hot-reload skipped: catalog build failed", "err", err)
			return
		}
		eng.SwapCatalog(newCat)
		slog.Info("catalog hot-reloaded", "problems", newCat.Len())
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.New(eng, loader)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	cancel() // stop worker pool
	eng.Shutdown()
	slog.Info("goodbye")
}
