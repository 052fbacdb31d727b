package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/models"
)

const campaignColumns = `id, brand_id, name, brief, budget, status, goal,
	target_audience_notes, target_location, is_public, created_at, updated_at`

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (brand_id, name, brief, budget, status, goal,
		                       target_audience_notes, target_location, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, c.BrandID, c.Name, c.Brief, c.Budget, c.Status, c.Goal,
		c.TargetAudienceNotes, c.TargetLocation, c.IsPublic,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) scanRow(row interface{ Scan(...any) error }) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(&c.ID, &c.BrandID, &c.Name, &c.Brief, &c.Budget, &c.Status,
		&c.Goal, &c.TargetAudienceNotes, &c.TargetLocation, &c.IsPublic,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return r.scanRow(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET name = $1, brief = $2, budget = $3, status = $4, goal = $5,
		       target_audience_notes = $6, target_location = $7, is_public = $8, updated_at = now()
		WHERE id = $9
	`, c.Name, c.Brief, c.Budget, c.Status, c.Goal,
		c.TargetAudienceNotes, c.TargetLocation, c.IsPublic, c.ID)
	return err
}

type CampaignFilter struct {
	BrandID  *uuid.UUID
	Status   *string
	IsPublic *bool
	Limit    int
	Offset   int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandID != nil {
		where = append(where, fmt.Sprintf("brand_id = $%d", argIdx))
		args = append(args, *f.BrandID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.IsPublic != nil {
		where = append(where, fmt.Sprintf("is_public = $%d", argIdx))
		args = append(args, *f.IsPublic)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}
