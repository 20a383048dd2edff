package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Task, error)
	Update(ctx context.Context, id uuid.UUID, update *models.TaskUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

// Create работает и через pool, и внутри транзакции (сидинг чеклиста при создании события)
func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, event_id, title, category, status, due_date, assignee, sort_order, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Status == "" {
		task.Status = models.TaskTodo
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	db := GetTxOrPool(ctx, r.pool)
	_, err := db.Exec(ctx, query,
		task.ID, task.EventID, task.Title, task.Category, task.Status,
		task.DueDate, task.Assignee, task.SortOrder, task.Notes,
		task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	query := `
		SELECT id, event_id, title, category, status, due_date, assignee, sort_order, notes, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var task models.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID, &task.EventID, &task.Title, &task.Category, &task.Status,
		&task.DueDate, &task.Assignee, &task.SortOrder, &task.Notes,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Task, error) {
	query := `
		SELECT id, event_id, title, category, status, due_date, assignee, sort_order, notes, created_at, updated_at
		FROM tasks
		WHERE event_id = $1
		ORDER BY sort_order, due_date NULLS LAST
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID, &task.EventID, &task.Title, &task.Category, &task.Status,
			&task.DueDate, &task.Assignee, &task.SortOrder, &task.Notes,
			&task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, id uuid.UUID, update *models.TaskUpdate) error {
	query := `
		UPDATE tasks SET
			title = COALESCE($2, title),
			category = COALESCE($3, category),
			status = COALESCE($4, status),
			due_date = COALESCE($5, due_date),
			assignee = COALESCE($6, assignee),
			sort_order = COALESCE($7, sort_order),
			notes = COALESCE($8, notes),
			updated_at = $9
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id,
		update.Title, update.Category, update.Status,
		update.DueDate, update.Assignee, update.SortOrder, update.Notes,
		time.Now(),
	)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
