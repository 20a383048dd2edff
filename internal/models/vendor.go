package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vendor запись маркетплейса, общая для всех событий (не принадлежит событию)
type Vendor struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	Name       string          `json:"name" db:"name"`
	Category   BudgetCategory  `json:"category" db:"category"`
	City       string          `json:"city" db:"city"`
	Phone      string          `json:"phone" db:"phone"`
	Email      string          `json:"email" db:"email"`
	PriceFrom  decimal.Decimal `json:"price_from" db:"price_from"`
	PriceTo    decimal.Decimal `json:"price_to" db:"price_to"`
	Rating     float64         `json:"rating" db:"rating"` //0-5, среднее по отзывам
	IsVerified bool            `json:"is_verified" db:"is_verified"`
	Notes      string          `json:"notes" db:"notes"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

type VendorCreate struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category" binding:"required"`
	City      string          `json:"city"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	PriceFrom decimal.Decimal `json:"price_from"`
	PriceTo   decimal.Decimal `json:"price_to"`
	Notes     string          `json:"notes"`
}

type VendorUpdate struct {
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	City       *string          `json:"city"`
	Phone      *string          `json:"phone"`
	Email      *string          `json:"email"`
	PriceFrom  *decimal.Decimal `json:"price_from"`
	PriceTo    *decimal.Decimal `json:"price_to"`
	Rating     *float64         `json:"rating"`
	IsVerified *bool            `json:"is_verified"`
	Notes      *string          `json:"notes"`
}

type VendorFilter struct {
	Category *string `form:"category"`
	City     *string `form:"city"`
	Verified *bool   `form:"verified"`
	Search   *string `form:"search"` //по имени, ILIKE
}
