package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sametklc/mystic/config"
	"github.com/sametklc/mystic/internal/chart"
	"github.com/sametklc/mystic/internal/ephemeris"
	"github.com/sametklc/mystic/internal/insight"
	"github.com/sametklc/mystic/internal/server"
	"github.com/sametklc/mystic/internal/transit"
	"github.com/sametklc/mystic/logger"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", "config/config.yml", "Path to configuration file")

	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service": cfg.Mystic.Name,
		"version": cfg.Mystic.Version,
	}).Info("starting mystic")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adapter := ephemeris.NewAdapter(ephemeris.NewTableSource(cfg.Ephemeris.TablePath))

	srv := server.NewServer(cfg.Server,
		chart.NewAssembler(adapter),
		transit.NewEngine(adapter),
		insight.NewService(adapter),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Run(ctx); err != nil {
			log.WithError(err).Error("http server failed")
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.WithFields(logger.Fields{"signal": sig.String()}).Info("shutdown signal received")
	case <-ctx.Done():
	}

	log.Info("starting graceful shutdown")
	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("graceful shutdown completed")
	case <-time.After(cfg.Server.ShutdownTimeout + 5*time.Second):
		log.Warn("graceful shutdown timeout exceeded")
	}

	log.Info("mystic stopped")
}
