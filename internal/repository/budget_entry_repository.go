package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type BudgetEntryRepository interface {
	Create(ctx context.Context, entry *models.BudgetEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BudgetEntry, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.BudgetEntry, error)
	GetByCategory(ctx context.Context, eventID uuid.UUID, category models.BudgetCategory) ([]models.BudgetEntry, error)
	Update(ctx context.Context, id uuid.UUID, update *models.BudgetEntryUpdate) error
	AddPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type budgetEntryRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetEntryRepository(pool *pgxpool.Pool) BudgetEntryRepository {
	return &budgetEntryRepository{pool: pool}
}

func (r *budgetEntryRepository) Create(ctx context.Context, entry *models.BudgetEntry) error {
	query := `
		INSERT INTO budget_entries (id, event_id, vendor_id, category, name, planned, committed, paid, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.EventID, entry.VendorID, entry.Category, entry.Name,
		entry.Planned, entry.Committed, entry.Paid, entry.Notes,
		entry.CreatedAt, entry.UpdatedAt,
	)
	return err
}

func (r *budgetEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BudgetEntry, error) {
	query := `
		SELECT id, event_id, vendor_id, category, name, planned, committed, paid, notes, created_at, updated_at
		FROM budget_entries
		WHERE id = $1
	`

	var entry models.BudgetEntry
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EventID, &entry.VendorID, &entry.Category, &entry.Name,
		&entry.Planned, &entry.Committed, &entry.Paid, &entry.Notes,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *budgetEntryRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.BudgetEntry, error) {
	//суммы по категориям считает planner в приложении, тут только выборка
	query := `
		SELECT id, event_id, vendor_id, category, name, planned, committed, paid, notes, created_at, updated_at
		FROM budget_entries
		WHERE event_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.BudgetEntry
	for rows.Next() {
		var entry models.BudgetEntry
		err := rows.Scan(
			&entry.ID, &entry.EventID, &entry.VendorID, &entry.Category, &entry.Name,
			&entry.Planned, &entry.Committed, &entry.Paid, &entry.Notes,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *budgetEntryRepository) GetByCategory(ctx context.Context, eventID uuid.UUID, category models.BudgetCategory) ([]models.BudgetEntry, error) {
	query := `
		SELECT id, event_id, vendor_id, category, name, planned, committed, paid, notes, created_at, updated_at
		FROM budget_entries
		WHERE event_id = $1 AND category = $2
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.BudgetEntry
	for rows.Next() {
		var entry models.BudgetEntry
		err := rows.Scan(
			&entry.ID, &entry.EventID, &entry.VendorID, &entry.Category, &entry.Name,
			&entry.Planned, &entry.Committed, &entry.Paid, &entry.Notes,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *budgetEntryRepository) Update(ctx context.Context, id uuid.UUID, update *models.BudgetEntryUpdate) error {
	query := `
		UPDATE budget_entries SET
			vendor_id = COALESCE($2, vendor_id),
			category = COALESCE($3, category),
			name = COALESCE($4, name),
			planned = COALESCE($5, planned),
			committed = COALESCE($6, committed),
			paid = COALESCE($7, paid),
			notes = COALESCE($8, notes),
			updated_at = $9
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id,
		update.VendorID, update.Category, update.Name,
		update.Planned, update.Committed, update.Paid,
		update.Notes, time.Now(),
	)
	return err
}

// AddPayment фиксирует платеж: увеличивает paid на сумму
func (r *budgetEntryRepository) AddPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE budget_entries SET paid = paid + $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, amount, time.Now())
	return err
}

func (r *budgetEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM budget_entries WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
