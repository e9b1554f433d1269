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
	"time"

	"github.com/iwvelando/finlit/internal/logging"
	"github.com/iwvelando/finlit/internal/server"
	"github.com/iwvelando/finlit/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	rulesConf, err := cfg.RuleConfiguration()
	if err != nil {
		logger.Fatal("failed to load rules configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	table, err := rulesConf.RuleTable()
	if err != nil {
		logger.Fatal("failed to build country rule table",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	classifier, err := rulesConf.Classifier()
	if err != nil {
		logger.Fatal("failed to build expense classifier",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	handler, err := server.NewHandler(logger, table, classifier, cfg.UploadSizeBytes(), version)
	if err != nil {
		logger.Fatal("failed to create handler",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	case sig := <-quit:
		logger.Info("shutting down",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
