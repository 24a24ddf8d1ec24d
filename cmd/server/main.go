package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placement-hub/internal/app"
	"placement-hub/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file loaded before reading the environment")
	grace := flag.Duration("shutdown-timeout", 10*time.Second, "time allowed for in-flight uploads to finish")
	flag.Parse()

	if err := run(*envFile, *grace); err != nil {
		log.Fatalf("placement-hub: %v", err)
	}
}

func run(envFile string, grace time.Duration) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	server, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server starting app=%s env=%s addr=%s strict_transitions=%t max_upload_bytes=%d",
			cfg.App.AppName, cfg.App.Environment, addr, cfg.Application.StrictTransitions, cfg.Shortlist.MaxUploadBytes)
		errCh <- server.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("server stopping grace=%s", grace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return server.Fiber.ShutdownWithContext(shutdownCtx)
}
