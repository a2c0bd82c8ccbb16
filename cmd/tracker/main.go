package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/usecase"
)

func main() {
	// Define command-line flags
	envFile := flag.String("env-file", ".env", "Optional dotenv file with TRACKER_* settings")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error (overrides TRACKER_LOG_LEVEL)")
	output := flag.String("output", "", "Output mode: text or json (overrides TRACKER_OUTPUT)")
	flag.Parse()

	config.LoadEnvFile(*envFile)
	cfg := config.Load()
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *output != "" {
		cfg.Output = *output
	}

	// Logs go to stderr so they never interleave with the session on stdout.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("Configuration validation failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run only notices ctx between commands. A signal that arrives while it
	// waits for input ends the process here; the session holds nothing to flush.
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		select {
		case <-done:
			return
		default:
		}
		log.Info("Shutdown signal received, ending session")
		os.Exit(130)
	}()

	// --- Wiring ---
	tracker := usecase.NewTracker(log)
	console := gateway.NewConsole(tracker, os.Stdin, os.Stdout, gateway.Options{
		Output:       cfg.Output,
		NumberFormat: cfg.NumberFormat,
		Logger:       log,
	})

	log.Info("Session started", "session_id", tracker.SessionID(), "output", cfg.Output)
	err := console.Run(ctx)
	close(done)
	if err != nil {
		if ctx.Err() != nil {
			log.Info("Session interrupted", "session_id", tracker.SessionID())
			os.Exit(130)
		}
		log.Error("Session failed", "error", err)
		os.Exit(1)
	}
	log.Info("Session ended", "session_id", tracker.SessionID())
}
