package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/influencer-marketplace/backend/internal/models"
)

type SubmissionRepo struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepo(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

func (r *SubmissionRepo) Create(ctx context.Context, s *models.Submission) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO submissions (invite_id, content_url, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, s.InviteID, s.ContentURL, s.Status).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	var s models.Submission
	err := r.pool.QueryRow(ctx, `
		SELECT id, invite_id, content_url, status, created_at, updated_at
		FROM submissions WHERE id = $1
	`, id).Scan(&s.ID, &s.InviteID, &s.ContentURL, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE submissions SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// LatestStatusByInvites returns the newest submission status per invite for
// the given invite ids. Invites without submissions are absent from the map.
func (r *SubmissionRepo) LatestStatusByInvites(ctx context.Context, inviteIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(inviteIDs) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (invite_id) invite_id, status
		FROM submissions
		WHERE invite_id = ANY($1)
		ORDER BY invite_id, created_at DESC
	`, inviteIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[uuid.UUID]string, len(inviteIDs))
	for rows.Next() {
		var id uuid.UUID
		var status string
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}
		statuses[id] = status
	}
	return statuses, rows.Err()
}
