package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/models"
)

const influencerColumns = `id, email, password_hash, name, followers, location, keywords,
	profile_url, niche, engagement_rate, audience_age_range, audience_gender_split, created_at, updated_at`

type InfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepo(pool *pgxpool.Pool) *InfluencerRepo {
	return &InfluencerRepo{pool: pool}
}

func (r *InfluencerRepo) Create(ctx context.Context, inf *models.Influencer) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO influencers (email, password_hash, name, followers, location, keywords,
		                         profile_url, niche, engagement_rate, audience_age_range, audience_gender_split)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, inf.Email, inf.PasswordHash, inf.Name, inf.Followers, inf.Location, inf.Keywords,
		inf.ProfileURL, inf.Niche, inf.EngagementRate, inf.AudienceAgeRange, inf.AudienceGenderSplit,
	).Scan(&inf.ID, &inf.CreatedAt, &inf.UpdatedAt)
}

func (r *InfluencerRepo) scanRow(row interface{ Scan(...any) error }) (*models.Influencer, error) {
	var inf models.Influencer
	err := row.Scan(&inf.ID, &inf.Email, &inf.PasswordHash, &inf.Name, &inf.Followers,
		&inf.Location, &inf.Keywords, &inf.ProfileURL, &inf.Niche, &inf.EngagementRate,
		&inf.AudienceAgeRange, &inf.AudienceGenderSplit, &inf.CreatedAt, &inf.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inf, nil
}

func (r *InfluencerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	return r.scanRow(r.pool.QueryRow(ctx,
		`SELECT `+influencerColumns+` FROM influencers WHERE id = $1`, id))
}

func (r *InfluencerRepo) GetByEmail(ctx context.Context, email string) (*models.Influencer, error) {
	return r.scanRow(r.pool.QueryRow(ctx,
		`SELECT `+influencerColumns+` FROM influencers WHERE email = $1`, email))
}

func (r *InfluencerRepo) UpdateProfile(ctx context.Context, inf *models.Influencer) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE influencers SET name = $1, location = $2, keywords = $3, profile_url = $4,
		       niche = $5, engagement_rate = $6, audience_age_range = $7, audience_gender_split = $8,
		       updated_at = now()
		WHERE id = $9
	`, inf.Name, inf.Location, inf.Keywords, inf.ProfileURL, inf.Niche,
		inf.EngagementRate, inf.AudienceAgeRange, inf.AudienceGenderSplit, inf.ID)
	return err
}

// ListWithProfileURL returns influencers eligible for a background stats
// refresh, oldest refresh first.
func (r *InfluencerRepo) ListWithProfileURL(ctx context.Context, limit int) ([]models.Influencer, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+influencerColumns+` FROM influencers
		 WHERE profile_url IS NOT NULL ORDER BY updated_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Influencer
	for rows.Next() {
		inf, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inf)
	}
	return out, rows.Err()
}

func (r *InfluencerRepo) UpdateFollowers(ctx context.Context, id uuid.UUID, followers int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE influencers SET followers = $1, updated_at = now() WHERE id = $2`, followers, id)
	return err
}

// ListByLocation returns influencers whose location equals the target under
// case folding. Exact match, not substring: matching is location-gated.
func (r *InfluencerRepo) ListByLocation(ctx context.Context, location string) ([]models.Influencer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+influencerColumns+` FROM influencers WHERE lower(location) = lower($1)`, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Influencer
	for rows.Next() {
		inf, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inf)
	}
	return out, rows.Err()
}

type InfluencerFilter struct {
	Niche        *string
	Location     *string
	MinFollowers *int
	MaxFollowers *int
	Limit        int
	Offset       int
}

// Search composes the optional filters that are present instead of branching
// per parameter combination.
func (r *InfluencerRepo) Search(ctx context.Context, f InfluencerFilter) ([]models.Influencer, error) {
	query := `SELECT ` + influencerColumns + ` FROM influencers`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.Niche != nil {
		where = append(where, fmt.Sprintf("niche ILIKE $%d", argIdx))
		args = append(args, "%"+*f.Niche+"%")
		argIdx++
	}
	if f.Location != nil {
		where = append(where, fmt.Sprintf("location ILIKE $%d", argIdx))
		args = append(args, "%"+*f.Location+"%")
		argIdx++
	}
	if f.MinFollowers != nil {
		where = append(where, fmt.Sprintf("followers >= $%d", argIdx))
		args = append(args, *f.MinFollowers)
		argIdx++
	}
	if f.MaxFollowers != nil {
		where = append(where, fmt.Sprintf("followers <= $%d", argIdx))
		args = append(args, *f.MaxFollowers)
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
	query += fmt.Sprintf(" ORDER BY followers DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Influencer
	for rows.Next() {
		inf, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inf)
	}
	return out, rows.Err()
}
