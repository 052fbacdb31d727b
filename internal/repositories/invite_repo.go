package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/models"
)

type InviteRepo struct {
	pool *pgxpool.Pool
}

func NewInviteRepo(pool *pgxpool.Pool) *InviteRepo {
	return &InviteRepo{pool: pool}
}

func (r *InviteRepo) Create(ctx context.Context, inv *models.Invite) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO invites (campaign_id, influencer_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, inv.CampaignID, inv.InfluencerID, inv.Status).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
}

func (r *InviteRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invite, error) {
	var inv models.Invite
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, status, created_at, updated_at
		FROM invites WHERE id = $1
	`, id).Scan(&inv.ID, &inv.CampaignID, &inv.InfluencerID, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByPair returns the invite for a (campaign, influencer) pair regardless of
// status. At most one such invite exists.
func (r *InviteRepo) GetByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Invite, error) {
	var inv models.Invite
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, status, created_at, updated_at
		FROM invites WHERE campaign_id = $1 AND influencer_id = $2
	`, campaignID, influencerID).Scan(&inv.ID, &inv.CampaignID, &inv.InfluencerID, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetAcceptedByPair returns the accepted invite for a pair, if any. Submissions
// may only be attached to such an invite.
func (r *InviteRepo) GetAcceptedByPair(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Invite, error) {
	var inv models.Invite
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, status, created_at, updated_at
		FROM invites
		WHERE campaign_id = $1 AND influencer_id = $2 AND status = $3
	`, campaignID, influencerID, models.InviteStatusAccepted).Scan(
		&inv.ID, &inv.CampaignID, &inv.InfluencerID, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InviteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE invites SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// ListByInfluencerWithCampaign returns the influencer's invites joined with
// campaign summaries, newest first.
func (r *InviteRepo) ListByInfluencerWithCampaign(ctx context.Context, influencerID uuid.UUID) ([]models.InviteWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.campaign_id, i.influencer_id, i.status, i.created_at, i.updated_at,
		       c.name, c.brief, c.budget
		FROM invites i
		JOIN campaigns c ON c.id = i.campaign_id
		WHERE i.influencer_id = $1
		ORDER BY i.created_at DESC
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []models.InviteWithCampaign
	for rows.Next() {
		var inv models.InviteWithCampaign
		if err := rows.Scan(&inv.ID, &inv.CampaignID, &inv.InfluencerID, &inv.Status,
			&inv.CreatedAt, &inv.UpdatedAt,
			&inv.CampaignName, &inv.CampaignBrief, &inv.CampaignBudget); err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

// ListByCampaignWithInfluencer returns a campaign's invites joined with
// influencer info and the latest submission per invite.
func (r *InviteRepo) ListByCampaignWithInfluencer(ctx context.Context, campaignID uuid.UUID) ([]models.InviteWithInfluencer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.campaign_id, i.influencer_id, i.status, i.created_at, i.updated_at,
		       inf.name, inf.followers,
		       s.id, s.content_url, s.status
		FROM invites i
		JOIN influencers inf ON inf.id = i.influencer_id
		LEFT JOIN LATERAL (
			SELECT id, content_url, status
			FROM submissions WHERE invite_id = i.id
			ORDER BY created_at DESC LIMIT 1
		) s ON true
		WHERE i.campaign_id = $1
		ORDER BY i.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []models.InviteWithInfluencer
	for rows.Next() {
		var inv models.InviteWithInfluencer
		if err := rows.Scan(&inv.ID, &inv.CampaignID, &inv.InfluencerID, &inv.Status,
			&inv.CreatedAt, &inv.UpdatedAt,
			&inv.InfluencerName, &inv.InfluencerFollowers,
			&inv.SubmissionID, &inv.SubmissionURL, &inv.SubmissionStatus); err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}
