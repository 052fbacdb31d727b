package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/models"
)

type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO applications (campaign_id, influencer_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.InfluencerID, a.Status).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var a models.Application
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, status, created_at, updated_at
		FROM applications WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) GetByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Application, error) {
	var a models.Application
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, status, created_at, updated_at
		FROM applications WHERE campaign_id = $1 AND influencer_id = $2
	`, campaignID, influencerID).Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// ApproveAndEnsureInvite marks the application approved and guarantees exactly
// one accepted invite exists for the pair, in a single transaction. The insert
// is a no-op when an invite already exists, so a retry after a partial failure
// converges to the same state.
func (r *ApplicationRepo) ApproveAndEnsureInvite(ctx context.Context, a *models.Application) (inviteID uuid.UUID, createdInvite bool, err error) {
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			UPDATE applications SET status = $1, updated_at = now() WHERE id = $2
		`, models.ApplicationStatusApproved, a.ID); err != nil {
			return err
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO invites (campaign_id, influencer_id, status)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (
				SELECT 1 FROM invites WHERE campaign_id = $1 AND influencer_id = $2
			)
			RETURNING id
		`, a.CampaignID, a.InfluencerID, models.InviteStatusAccepted).Scan(&inviteID)
		if err == nil {
			createdInvite = true
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		// Invite already present: report its id without touching its status.
		return tx.QueryRow(ctx, `
			SELECT id FROM invites WHERE campaign_id = $1 AND influencer_id = $2
		`, a.CampaignID, a.InfluencerID).Scan(&inviteID)
	})
	return inviteID, createdInvite, err
}

// ListByInfluencerWithCampaign returns the influencer's applications joined
// with campaign summaries, newest first.
func (r *ApplicationRepo) ListByInfluencerWithCampaign(ctx context.Context, influencerID uuid.UUID) ([]models.ApplicationWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_id, a.status, a.created_at, a.updated_at,
		       c.name, c.brief, c.budget
		FROM applications a
		JOIN campaigns c ON c.id = a.campaign_id
		WHERE a.influencer_id = $1
		ORDER BY a.created_at DESC
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithCampaign
	for rows.Next() {
		var a models.ApplicationWithCampaign
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
			&a.CampaignName, &a.CampaignBrief, &a.CampaignBudget); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByCampaignWithInfluencer returns a campaign's applications joined with
// applicant profiles.
func (r *ApplicationRepo) ListByCampaignWithInfluencer(ctx context.Context, campaignID uuid.UUID) ([]models.ApplicationWithInfluencer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_id, a.status, a.created_at, a.updated_at,
		       inf.name, inf.followers, inf.niche, inf.engagement_rate
		FROM applications a
		JOIN influencers inf ON inf.id = a.influencer_id
		WHERE a.campaign_id = $1
		ORDER BY a.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithInfluencer
	for rows.Next() {
		var a models.ApplicationWithInfluencer
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
			&a.InfluencerName, &a.InfluencerFollowers, &a.InfluencerNiche, &a.EngagementRate); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
