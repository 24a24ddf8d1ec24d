package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"placement-hub/internal/config"
	"placement-hub/internal/database/migration"
	dbpostgres "placement-hub/internal/database/postgres"
	"placement-hub/internal/database/seeder"
	"placement-hub/migrations"

	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "load demo profiles and jobs after migrating")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	logger := log.Default()
	runner := migration.Runner{FS: migrations.FS, Logger: logger}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if *seed {
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}
	log.Printf("migrate done seed=%t", *seed)
}
