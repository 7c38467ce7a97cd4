package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solar-profit/internal/api"
	"solar-profit/internal/config"
	"solar-profit/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (optional)")
	flag.Parse()

	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := logging.Setup(cfg.Log); err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}
	log := logging.Component("api")

	caches, err := api.NewCaches(cfg)
	if err != nil {
		log.Fatalf("Failed to build caches: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if caches.Results != nil {
		go caches.Results.Run(ctx, 5*time.Minute)
		go caches.IDs.Run(ctx, 5*time.Minute)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           api.NewRouter(cfg, caches, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":          srv.Addr,
			"env":           cfg.Server.Env,
			"intervals":     cfg.Estimator.Intervals,
			"strict_domain": cfg.Estimator.StrictDomain,
			"cache":         cfg.Cache.Enabled,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown: %v", err)
	}
}
