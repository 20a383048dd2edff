package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Guest, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Guest, error)
	GetByRSVPCode(ctx context.Context, code string) (*models.Guest, error)
	GetByEmail(ctx context.Context, eventID uuid.UUID, email string) (*models.Guest, error)
	GetPendingWithEmail(ctx context.Context, eventID uuid.UUID) ([]models.Guest, error)
	Update(ctx context.Context, id uuid.UUID, update *models.GuestUpdate) error
	UpdateRSVPStatus(ctx context.Context, id uuid.UUID, status models.RSVPStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type guestRepository struct {
	pool *pgxpool.Pool
}

func NewGuestRepository(pool *pgxpool.Pool) GuestRepository {
	return &guestRepository{pool: pool}
}

const guestColumns = `id, event_id, family_group_id, name, email, phone, side, rsvp_status, rsvp_code,
		is_outstation, needs_room, room_assigned, needs_pickup, pickup_assigned, plus_ones, dietary_notes,
		created_at, updated_at`

func scanGuest(row interface{ Scan(...any) error }) (*models.Guest, error) {
	var g models.Guest
	err := row.Scan(
		&g.ID, &g.EventID, &g.FamilyGroupID, &g.Name, &g.Email, &g.Phone,
		&g.Side, &g.RSVPStatus, &g.RSVPCode,
		&g.IsOutstation, &g.NeedsRoom, &g.RoomAssigned, &g.NeedsPickup, &g.PickupAssigned,
		&g.PlusOnes, &g.DietaryNotes, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create работает и внутри транзакции(группы, импорт), и напрямую через pool
func (r *guestRepository) Create(ctx context.Context, guest *models.Guest) error {
	query := `
		INSERT INTO guests (` + guestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	if guest.Side == "" {
		guest.Side = models.SideCommon
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPPending
	}
	now := time.Now()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	db := GetTxOrPool(ctx, r.pool)
	_, err := db.Exec(ctx, query,
		guest.ID, guest.EventID, guest.FamilyGroupID, guest.Name, guest.Email, guest.Phone,
		guest.Side, guest.RSVPStatus, guest.RSVPCode,
		guest.IsOutstation, guest.NeedsRoom, guest.RoomAssigned, guest.NeedsPickup, guest.PickupAssigned,
		guest.PlusOnes, guest.DietaryNotes, guest.CreatedAt, guest.UpdatedAt,
	)
	return err
}

func (r *guestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	return scanGuest(r.pool.QueryRow(ctx, query, id))
}

func (r *guestRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *g)
	}
	return guests, rows.Err()
}

// GetByRSVPCode ищет гостя по коду из ссылки в приглашении
func (r *guestRepository) GetByRSVPCode(ctx context.Context, code string) (*models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE rsvp_code = $1`
	return scanGuest(r.pool.QueryRow(ctx, query, code))
}

// GetByEmail проверка дублей при импорте, nil без ошибки если гостя нет
func (r *guestRepository) GetByEmail(ctx context.Context, eventID uuid.UUID, email string) (*models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 AND lower(email) = lower($2)`

	db := GetTxOrPool(ctx, r.pool)
	guest, err := scanGuest(db.QueryRow(ctx, query, eventID, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return guest, nil
}

// GetPendingWithEmail гости без ответа, которым есть куда слать напоминание
func (r *guestRepository) GetPendingWithEmail(ctx context.Context, eventID uuid.UUID) ([]models.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 AND rsvp_status = 'pending' AND email <> ''`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) Update(ctx context.Context, id uuid.UUID, update *models.GuestUpdate) error {
	query := `
		UPDATE guests SET
			family_group_id = COALESCE($2, family_group_id),
			name = COALESCE($3, name),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			side = COALESCE($6, side),
			rsvp_status = COALESCE($7, rsvp_status),
			is_outstation = COALESCE($8, is_outstation),
			needs_room = COALESCE($9, needs_room),
			room_assigned = COALESCE($10, room_assigned),
			needs_pickup = COALESCE($11, needs_pickup),
			pickup_assigned = COALESCE($12, pickup_assigned),
			plus_ones = COALESCE($13, plus_ones),
			dietary_notes = COALESCE($14, dietary_notes),
			updated_at = $15
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id,
		update.FamilyGroupID, update.Name, update.Email, update.Phone,
		update.Side, update.RSVPStatus,
		update.IsOutstation, update.NeedsRoom, update.RoomAssigned,
		update.NeedsPickup, update.PickupAssigned,
		update.PlusOnes, update.DietaryNotes, time.Now(),
	)
	return err
}

func (r *guestRepository) UpdateRSVPStatus(ctx context.Context, id uuid.UUID, status models.RSVPStatus) error {
	query := `UPDATE guests SET rsvp_status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status, time.Now())
	return err
}

func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM guests WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
