package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Event, error)
	GetUpcoming(ctx context.Context, from, to time.Time) ([]models.Event, error)
	Update(ctx context.Context, id uuid.UUID, update *models.EventUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `id, user_id, name, event_date, venue, city, currency, total_budget,
	catering_per_head, room_cost_per_night, transport_cost_per_seat, room_occupancy,
	notes, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.UserID, &e.Name, &e.EventDate, &e.Venue, &e.City,
		&e.Currency, &e.TotalBudget,
		&e.CateringPerHead, &e.RoomCostPerNight, &e.TransportCostPerSeat, &e.RoomOccupancy,
		&e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, user_id, name, event_date, venue, city, currency, total_budget,
			catering_per_head, room_cost_per_night, transport_cost_per_seat, room_occupancy,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.RoomOccupancy == 0 {
		event.RoomOccupancy = 2
	}

	_, err := r.pool.Exec(ctx, query,
		event.ID, event.UserID, event.Name, event.EventDate, event.Venue, event.City,
		event.Currency, event.TotalBudget,
		event.CateringPerHead, event.RoomCostPerNight, event.TransportCostPerSeat, event.RoomOccupancy,
		event.Notes, event.CreatedAt, event.UpdatedAt,
	)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND deleted_at IS NULL`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

func (r *eventRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE user_id = $1 AND deleted_at IS NULL ORDER BY event_date`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// GetUpcoming события в окне дат, для крон-напоминаний
func (r *eventRepository) GetUpcoming(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_date >= $1 AND event_date <= $2 AND deleted_at IS NULL`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id uuid.UUID, update *models.EventUpdate) error {
	query := `
		UPDATE events SET
			name = COALESCE($2, name),
			event_date = COALESCE($3, event_date),
			venue = COALESCE($4, venue),
			city = COALESCE($5, city),
			currency = COALESCE($6, currency),
			total_budget = COALESCE($7, total_budget),
			catering_per_head = COALESCE($8, catering_per_head),
			room_cost_per_night = COALESCE($9, room_cost_per_night),
			transport_cost_per_seat = COALESCE($10, transport_cost_per_seat),
			room_occupancy = COALESCE($11, room_occupancy),
			notes = COALESCE($12, notes),
			updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := r.pool.Exec(ctx, query, id,
		update.Name, update.EventDate, update.Venue, update.City,
		update.Currency, update.TotalBudget,
		update.CateringPerHead, update.RoomCostPerNight, update.TransportCostPerSeat,
		update.RoomOccupancy, update.Notes, time.Now(),
	)
	return err
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE events SET deleted_at = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, time.Now())
	return err
}
