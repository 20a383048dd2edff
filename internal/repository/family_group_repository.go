package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FamilyGroupRepository interface {
	Create(ctx context.Context, group *models.FamilyGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FamilyGroup, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.FamilyGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type familyGroupRepository struct {
	pool *pgxpool.Pool
}

func NewFamilyGroupRepository(pool *pgxpool.Pool) FamilyGroupRepository {
	return &familyGroupRepository{pool: pool}
}

// Create вызывается внутри транзакции вместе с созданием гостей группы
func (r *familyGroupRepository) Create(ctx context.Context, group *models.FamilyGroup) error {
	query := `
		INSERT INTO family_groups (id, event_id, name, head_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	group.CreatedAt = time.Now()

	db := GetTxOrPool(ctx, r.pool)
	_, err := db.Exec(ctx, query, group.ID, group.EventID, group.Name, group.HeadName, group.CreatedAt)
	return err
}

func (r *familyGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FamilyGroup, error) {
	query := `SELECT id, event_id, name, head_name, created_at FROM family_groups WHERE id = $1`

	var group models.FamilyGroup
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&group.ID, &group.EventID, &group.Name, &group.HeadName, &group.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *familyGroupRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.FamilyGroup, error) {
	query := `SELECT id, event_id, name, head_name, created_at FROM family_groups WHERE event_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.FamilyGroup
	for rows.Next() {
		var group models.FamilyGroup
		err := rows.Scan(&group.ID, &group.EventID, &group.Name, &group.HeadName, &group.CreatedAt)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// Delete удаляет группу, гости остаются (fk с on delete set null)
func (r *familyGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM family_groups WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
