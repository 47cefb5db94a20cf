package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"teamchat/internal/config"
	"teamchat/internal/httpserver"
	"teamchat/internal/query"
	"teamchat/internal/simulator"
	"teamchat/internal/snapshot"
	"teamchat/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Durable snapshot slot
	slot, err := snapshot.OpenSQLite(cfg.SnapshotDSN, cfg.SnapshotSlot)
	if err != nil {
		logger.Fatal("failed to open snapshot slot", zap.Error(err))
	}
	defer slot.Close()

	// State store: previous snapshot, or the seed dataset
	st := store.Open(slot, logger)
	q := query.NewService(st)

	var sim *simulator.Simulator
	if cfg.SimulatorEnabled {
		sim = simulator.New(st, logger, cfg.ReplyMinDelay, cfg.ReplyMaxDelay,
			rand.NewSource(time.Now().UnixNano()))
	}

	router := httpserver.NewRouter(cfg, st, q, sim, logger)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("starting teamchat server", zap.String("addr", cfg.HTTPAddr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server")

	// Cancel pending simulated replies before the store goes away.
	if sim != nil {
		sim.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
