package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/models"
)

type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

func (r *BrandRepo) Create(ctx context.Context, b *models.BrandUser) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO brand_users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, b.Email, b.PasswordHash).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BrandUser, error) {
	var b models.BrandUser
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM brand_users WHERE id = $1
	`, id).Scan(&b.ID, &b.Email, &b.PasswordHash, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepo) GetByEmail(ctx context.Context, email string) (*models.BrandUser, error) {
	var b models.BrandUser
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM brand_users WHERE email = $1
	`, email).Scan(&b.ID, &b.Email, &b.PasswordHash, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
