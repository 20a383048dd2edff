package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestImportRepository interface {
	Create(ctx context.Context, imp *models.GuestImport) error
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.GuestImport, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, errMsg string, imported, skipped, failed int) error
}

type guestImportRepository struct {
	pool *pgxpool.Pool
}

func NewGuestImportRepository(pool *pgxpool.Pool) GuestImportRepository {
	return &guestImportRepository{pool: pool}
}

func (r *guestImportRepository) Create(ctx context.Context, imp *models.GuestImport) error {
	query := `
		INSERT INTO guest_imports (id, event_id, file_name, status, error_message, guests_imported, duplicates_skipped, rows_failed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if imp.ID == uuid.Nil {
		imp.ID = uuid.New()
	}
	if imp.Status == "" {
		imp.Status = "pending"
	}
	imp.CreatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		imp.ID, imp.EventID, imp.FileName, imp.Status, imp.ErrorMessage,
		imp.GuestsImported, imp.DuplicatesSkipped, imp.RowsFailed, imp.CreatedAt,
	)
	return err
}

func (r *guestImportRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.GuestImport, error) {
	query := `
		SELECT id, event_id, file_name, status, error_message, guests_imported, duplicates_skipped, rows_failed, created_at
		FROM guest_imports
		WHERE event_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []models.GuestImport
	for rows.Next() {
		var imp models.GuestImport
		err := rows.Scan(
			&imp.ID, &imp.EventID, &imp.FileName, &imp.Status, &imp.ErrorMessage,
			&imp.GuestsImported, &imp.DuplicatesSkipped, &imp.RowsFailed, &imp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

// UpdateStatus закрывает лог импорта итоговыми счетчиками
func (r *guestImportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status, errMsg string, imported, skipped, failed int) error {
	query := `
		UPDATE guest_imports SET
			status = $2,
			error_message = $3,
			guests_imported = $4,
			duplicates_skipped = $5,
			rows_failed = $6
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, status, errMsg, imported, skipped, failed)
	return err
}
