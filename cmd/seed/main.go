package main

import (
	"context"
	"flag"
	"log"

	"inventive-admin/pkg/config"
	"inventive-admin/pkg/database/postgresql"
	"inventive-admin/pkg/logger"
	"inventive-admin/seeders"
)

func main() {
	reset := flag.Bool("reset", false, "truncate the equipment table before seeding")
	flag.Parse()

	cfg := config.New()
	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	ctx := context.Background()

	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer pool.Close()

	if *reset {
		if err := seeders.Reset(ctx, pool, zapLogger); err != nil {
			log.Fatalf("resetting equipment table: %v", err)
		}
	}

	if err := seeders.SeedEquipment(ctx, pool, zapLogger); err != nil {
		log.Fatalf("seeding equipment: %v", err)
	}
}
