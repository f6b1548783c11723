package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/config"
	"github.com/princeomar/cruise-backend/internal/database"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/internal/services"
	"github.com/princeomar/cruise-backend/pkg/jwt"
)

// Bootstraps the first dashboard operator. Later grants go through POST /api/v1/admin/roles.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var (
		email    string
		password string
		fullName string
	)
	flag.StringVar(&email, "email", "", "email of the account to promote (required)")
	flag.StringVar(&password, "password", "", "create the account with this password when it does not exist")
	flag.StringVar(&fullName, "name", "", "full name used when creating the account")
	flag.Parse()

	if email == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := database.NewConnection(ctx, config.DatabaseConfig{URL: dbURL, MaxConnections: 2, MaxIdleConnections: 1})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Token signing is never reached from this tool
	auth := services.NewAdminAuthService(
		database.NewAdminUserRepository(db),
		database.NewUserRoleRepository(db),
		database.NewRefreshTokenRepository(db),
		jwt.NewService("unused", "unused-refresh", 0, 0),
		services.NewAuditService(db, true),
		12,
		logger,
	)

	grant, err := auth.GrantRoleByEmail(ctx, email, models.RoleAdmin)
	if errors.Is(err, services.ErrUserNotFound) && password != "" {
		if _, err = auth.SignUp(ctx, models.AdminSignUpRequest{Email: email, Password: password, FullName: fullName}, services.ClientInfo{}); err != nil {
			logger.Fatalf("Failed to create account: %v", err)
		}
		logger.WithField("email", email).Info("Account created")
		grant, err = auth.GrantRoleByEmail(ctx, email, models.RoleAdmin)
	}
	if err != nil {
		logger.Fatalf("Failed to grant admin role: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"email":   email,
		"user_id": grant.UserID,
	}).Info("Admin role granted")
}
