package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"inventive-admin/migrations"
	"inventive-admin/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of migrating up")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("setting goose dialect: %v", err)
	}

	if *down {
		if err := goose.Down(db, "."); err != nil {
			log.Fatalf("migrating down: %v", err)
		}
		log.Println("rolled back one migration")
		return
	}

	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("migrating up: %v", err)
	}
	log.Println("migrations applied")
}
