package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/princeomar/cruise-backend/internal/models"
)

const visitColumns = `id, page_path, country, country_code, city, user_agent, referrer,
	device_type, browser, os, is_bot, created_at`

// VisitRepository handles visit database operations
type VisitRepository struct {
	db DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// Create inserts a visit; created_at is assigned by the database
func (r *VisitRepository) Create(ctx context.Context, v *models.Visit) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	query := `
		INSERT INTO visits (
			id, page_path, country, country_code, city, user_agent, referrer,
			device_type, browser, os, is_bot
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		v.ID, v.PagePath, v.Country, v.CountryCode, v.City, v.UserAgent, v.Referrer,
		v.DeviceType, v.Browser, v.OS, v.IsBot,
	).Scan(&v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return nil
}

// List returns every visit newest first
func (r *VisitRepository) List(ctx context.Context) ([]models.Visit, error) {
	visits := []models.Visit{}
	err := r.db.SelectContext(ctx, &visits, `SELECT `+visitColumns+` FROM visits ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}
