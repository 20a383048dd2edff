package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	GetAll(ctx context.Context, filter *models.VendorFilter) ([]models.Vendor, error)
	Update(ctx context.Context, id uuid.UUID, update *models.VendorUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, category, city, phone, email, price_from, price_to, rating, is_verified, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	now := time.Now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	_, err := r.pool.Exec(ctx, query,
		vendor.ID, vendor.Name, vendor.Category, vendor.City, vendor.Phone, vendor.Email,
		vendor.PriceFrom, vendor.PriceTo, vendor.Rating, vendor.IsVerified, vendor.Notes,
		vendor.CreatedAt, vendor.UpdatedAt,
	)
	return err
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	query := `
		SELECT id, name, category, city, phone, email, price_from, price_to, rating, is_verified, notes, created_at, updated_at
		FROM vendors
		WHERE id = $1
	`

	var v models.Vendor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Category, &v.City, &v.Phone, &v.Email,
		&v.PriceFrom, &v.PriceTo, &v.Rating, &v.IsVerified, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetAll каталог с фильтрами, условия собираются динамически
func (r *vendorRepository) GetAll(ctx context.Context, filter *models.VendorFilter) ([]models.Vendor, error) {
	query := `
		SELECT id, name, category, city, phone, email, price_from, price_to, rating, is_verified, notes, created_at, updated_at
		FROM vendors
		WHERE 1=1
	`
	args := []interface{}{}
	argNum := 1

	if filter != nil {
		if filter.Category != nil {
			query += fmt.Sprintf(" AND category = $%d", argNum)
			args = append(args, models.ParseBudgetCategory(*filter.Category))
			argNum++
		}
		if filter.City != nil {
			query += fmt.Sprintf(" AND city ILIKE $%d", argNum)
			args = append(args, *filter.City)
			argNum++
		}
		if filter.Verified != nil {
			query += fmt.Sprintf(" AND is_verified = $%d", argNum)
			args = append(args, *filter.Verified)
			argNum++
		}
		if filter.Search != nil {
			query += fmt.Sprintf(" AND name ILIKE $%d", argNum)
			args = append(args, "%"+*filter.Search+"%")
			argNum++
		}
	}

	query += " ORDER BY rating DESC, name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var v models.Vendor
		err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.City, &v.Phone, &v.Email,
			&v.PriceFrom, &v.PriceTo, &v.Rating, &v.IsVerified, &v.Notes,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *vendorRepository) Update(ctx context.Context, id uuid.UUID, update *models.VendorUpdate) error {
	query := `
		UPDATE vendors SET
			name = COALESCE($2, name),
			category = COALESCE($3, category),
			city = COALESCE($4, city),
			phone = COALESCE($5, phone),
			email = COALESCE($6, email),
			price_from = COALESCE($7, price_from),
			price_to = COALESCE($8, price_to),
			rating = COALESCE($9, rating),
			is_verified = COALESCE($10, is_verified),
			notes = COALESCE($11, notes),
			updated_at = $12
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id,
		update.Name, update.Category, update.City, update.Phone, update.Email,
		update.PriceFrom, update.PriceTo, update.Rating, update.IsVerified, update.Notes,
		time.Now(),
	)
	return err
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vendors WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
