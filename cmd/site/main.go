// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/cache"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/cms"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/config"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/content"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/handler"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/render"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/internal/revalidate"
	"github.com/egouilliard-leyton/jane-coolidge-portfolio/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	client, err := cms.New(cms.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		UseCDN:     cfg.SanityUseCDN,
	}, logger)
	if err != nil {
		return err
	}

	store, err := newStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing cache", "error", err)
		}
	}()

	svc := content.NewService(store, client, cfg.DefaultTTL(), logger)

	renderer, err := render.New(web.Templates, logger)
	if err != nil {
		return err
	}

	frontend := handler.NewFrontend(svc, renderer, cfg.BaseURL, logger)
	webhook := revalidate.NewHandler(revalidate.Options{
		Secret: cfg.RevalidateSecret,
		Store:  store,
		Logger: logger,
		Delay:  cfg.RevalidateDelay,
	})

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	if cfg.IsDevelopment() {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Timeout(60 * time.Second))

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	frontend.Routes(r)
	r.Get("/healthz", handler.Healthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/revalidate", webhook.HandleWebhook)
		r.Get("/revalidate", webhook.HandleHealthCheck)
		r.Get("/studio/schema", handler.StudioSchema)
	})

	// Keep the layout singletons warm so chrome renders from cache even
	// right after an invalidation storm.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := svc.SiteSettings(ctx); err != nil {
			logger.Warn("cache warm: site settings", "error", err)
		}
		if _, err := svc.Navigation(ctx); err != nil {
			logger.Warn("cache warm: navigation", "error", err)
		}
		if _, err := svc.SitemapEntries(ctx); err != nil {
			logger.Warn("cache warm: sitemap", "error", err)
		}
	}); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// newLogger builds the process logger: text in development, JSON elsewhere.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// newStore selects the cache backend: Redis when configured, in-process
// memory otherwise.
func newStore(cfg *config.Config) (cache.Store, error) {
	if cfg.UseRedisCache() {
		return cache.NewRedisCacheFromURL(cfg.RedisURL, cfg.CachePrefix, cfg.DefaultTTL())
	}
	return cache.NewMemoryCache(cache.MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL(),
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}), nil
}
