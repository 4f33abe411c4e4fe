package main

import (
	"os"

	"claimdesk/cmd/migration/initialize"
	"claimdesk/cmd/migration/seed"
	"claimdesk/config"
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	"claimdesk/migrations"

	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	log := logger.New("migration")

	config, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(config)
	if err != nil {
		log.Er("failed to create database", err)
		os.Exit(1)
	}
	defer db.Close()

	sqlDB, err := db.SQL.DB()
	if err != nil {
		log.Er("failed to get sql database handle", err)
		os.Exit(1)
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       ".",
	}

	applied, err := migrate.Exec(sqlDB, "sqlite3", source, migrate.Up)
	if err != nil {
		log.Er("failed to apply migrations", err)
		os.Exit(1)
	}
	log.Info("Migrations applied", "count", applied)

	if err := initialize.InitializeTables(db.SQL, config, log); err != nil {
		log.Er("failed to initialize tables", err)
		os.Exit(1)
	}

	if config.Environment == "development" {
		if err := seed.Seed(db.SQL, config, log); err != nil {
			log.Er("failed to seed database", err)
			os.Exit(1)
		}
	}
}
