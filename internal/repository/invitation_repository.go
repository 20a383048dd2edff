package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvitationRepository interface {
	Create(ctx context.Context, inv *models.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Invitation, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}

type invitationRepository struct {
	pool *pgxpool.Pool
}

func NewInvitationRepository(pool *pgxpool.Pool) InvitationRepository {
	return &invitationRepository{pool: pool}
}

func (r *invitationRepository) Create(ctx context.Context, inv *models.Invitation) error {
	query := `
		INSERT INTO invitations (id, event_id, guest_id, template_code, channel, status, error_message, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.Channel == "" {
		inv.Channel = models.ChannelEmail
	}
	if inv.Status == "" {
		inv.Status = models.InvitationDraft
	}
	inv.CreatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		inv.ID, inv.EventID, inv.GuestID, inv.TemplateCode, inv.Channel,
		inv.Status, inv.ErrorMessage, inv.SentAt, inv.CreatedAt,
	)
	return err
}

func (r *invitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	query := `
		SELECT id, event_id, guest_id, template_code, channel, status, error_message, sent_at, created_at
		FROM invitations
		WHERE id = $1
	`

	var inv models.Invitation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.EventID, &inv.GuestID, &inv.TemplateCode, &inv.Channel,
		&inv.Status, &inv.ErrorMessage, &inv.SentAt, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Invitation, error) {
	query := `
		SELECT id, event_id, guest_id, template_code, channel, status, error_message, sent_at, created_at
		FROM invitations
		WHERE event_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []models.Invitation
	for rows.Next() {
		var inv models.Invitation
		err := rows.Scan(
			&inv.ID, &inv.EventID, &inv.GuestID, &inv.TemplateCode, &inv.Channel,
			&inv.Status, &inv.ErrorMessage, &inv.SentAt, &inv.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `UPDATE invitations SET status = 'sent', sent_at = $2, error_message = '' WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, sentAt)
	return err
}

func (r *invitationRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `UPDATE invitations SET status = 'failed', error_message = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, errMsg)
	return err
}
