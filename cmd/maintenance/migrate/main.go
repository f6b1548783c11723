package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/config"
	"github.com/princeomar/cruise-backend/internal/database"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var (
		dbURLFlag string
		list      bool
	)
	flag.StringVar(&dbURLFlag, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	flag.BoolVar(&list, "list", false, "print the embedded migrations and exit")
	flag.Parse()

	if list {
		migrations, err := database.Migrations()
		if err != nil {
			logger.Fatalf("Failed to read migrations: %v", err)
		}
		for _, m := range migrations {
			logger.Info(m.Version)
		}
		return
	}

	_ = godotenv.Load()

	dbURL := dbURLFlag
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set and -database-url was not provided")
	}

	ctx := context.Background()
	db, err := database.NewConnection(ctx, config.DatabaseConfig{URL: dbURL, MaxConnections: 2, MaxIdleConnections: 1})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	applied, err := database.Migrate(ctx, db, logger)
	if err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}
	if len(applied) == 0 {
		logger.Info("Database already up to date")
		return
	}
	logger.WithField("applied", applied).Info("Migrations applied")
}
