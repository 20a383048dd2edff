package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetCategory string

const (
	CategoryVenue          BudgetCategory = "venue"
	CategoryCatering       BudgetCategory = "catering"
	CategoryDecorations    BudgetCategory = "decorations"
	CategoryPhotography    BudgetCategory = "photography"
	CategoryVideography    BudgetCategory = "videography"
	CategoryEntertainment  BudgetCategory = "entertainment"
	CategoryFlowers        BudgetCategory = "flowers"
	CategoryTransportation BudgetCategory = "transportation"
	CategoryAccommodation  BudgetCategory = "accommodation"
	CategoryInvitations    BudgetCategory = "invitations"
	CategoryGifts          BudgetCategory = "gifts"
	CategoryRentals        BudgetCategory = "rentals"
	CategoryStaff          BudgetCategory = "staff"
	CategoryMakeup         BudgetCategory = "makeup"
	CategoryJewelry        BudgetCategory = "jewelry"
	CategoryMiscellaneous  BudgetCategory = "miscellaneous" //фоллбэк для неизвестных категорий
)

// полный список категорий в порядке отображения
var BudgetCategories = []BudgetCategory{
	CategoryVenue,
	CategoryCatering,
	CategoryDecorations,
	CategoryPhotography,
	CategoryVideography,
	CategoryEntertainment,
	CategoryFlowers,
	CategoryTransportation,
	CategoryAccommodation,
	CategoryInvitations,
	CategoryGifts,
	CategoryRentals,
	CategoryStaff,
	CategoryMakeup,
	CategoryJewelry,
	CategoryMiscellaneous,
}

// ParseBudgetCategory маппит строку на категорию, все неизвестное уходит в miscellaneous
// (новая категория = правка enum и этого switch, а не тихий дефолт в рантайме)
func ParseBudgetCategory(s string) BudgetCategory {
	c := BudgetCategory(s)
	switch c {
	case CategoryVenue, CategoryCatering, CategoryDecorations, CategoryPhotography,
		CategoryVideography, CategoryEntertainment, CategoryFlowers, CategoryTransportation,
		CategoryAccommodation, CategoryInvitations, CategoryGifts, CategoryRentals,
		CategoryStaff, CategoryMakeup, CategoryJewelry, CategoryMiscellaneous:
		return c
	default:
		return CategoryMiscellaneous
	}
}

type BudgetEntry struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	EventID   uuid.UUID       `json:"event_id" db:"event_id"`
	VendorID  *uuid.UUID      `json:"vendor_id,omitempty" db:"vendor_id"` //вендор принадлежит событию, не записи
	Category  BudgetCategory  `json:"category" db:"category"`
	Name      string          `json:"name" db:"name"`
	Planned   decimal.Decimal `json:"planned" db:"planned"`
	Committed decimal.Decimal `json:"committed" db:"committed"`
	Paid      decimal.Decimal `json:"paid" db:"paid"`
	Notes     string          `json:"notes" db:"notes"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`

	//связанные данные(заполняются при чтении с join)
	Vendor *Vendor `json:"vendor,omitempty"`
}

// Pending сколько осталось выплатить по записи, никогда не отрицательное
// (переплата это аномалия ввода данных, минус не показываем)
func (e *BudgetEntry) Pending() decimal.Decimal {
	pending := e.Committed.Sub(e.Paid)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

type BudgetEntryCreate struct {
	Category  string           `json:"category" binding:"required"`
	VendorID  *uuid.UUID       `json:"vendor_id"`
	Name      string           `json:"name" binding:"required"`
	Planned   decimal.Decimal  `json:"planned"`
	Committed decimal.Decimal  `json:"committed"`
	Paid      *decimal.Decimal `json:"paid"`
	Notes     string           `json:"notes"`
}

type BudgetEntryUpdate struct {
	Category  *string          `json:"category"`
	VendorID  *uuid.UUID       `json:"vendor_id"`
	Name      *string          `json:"name"`
	Planned   *decimal.Decimal `json:"planned"`
	Committed *decimal.Decimal `json:"committed"`
	Paid      *decimal.Decimal `json:"paid"`
	Notes     *string          `json:"notes"`
}

type PaymentCreate struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// Вычисляются на лету, в бд не хранятся

type CategoryBudget struct {
	Category     BudgetCategory  `json:"category"`
	EntryCount   int             `json:"entry_count"`
	Planned      decimal.Decimal `json:"planned"`
	Committed    decimal.Decimal `json:"committed"`
	Paid         decimal.Decimal `json:"paid"`
	Pending      decimal.Decimal `json:"pending"`
	Delta        decimal.Decimal `json:"delta"` //committed - planned, положительное = перерасход
	IsOverBudget bool            `json:"is_over_budget"`
}

type HealthStatus string

const (
	HealthOnTrack    HealthStatus = "on-track"
	HealthAtRisk     HealthStatus = "at-risk"
	HealthOverBudget HealthStatus = "over-budget"
)

type BudgetSummary struct {
	TotalBudget decimal.Decimal `json:"total_budget"` //потолок, задается пользователем, 0 = не задан
	Planned     decimal.Decimal `json:"planned"`
	Committed   decimal.Decimal `json:"committed"`
	Paid        decimal.Decimal `json:"paid"`
	Pending     decimal.Decimal `json:"pending"`
	Overrun     decimal.Decimal `json:"overrun"`
	Health      HealthStatus    `json:"health"`
}

type CostDriver struct {
	Category BudgetCategory  `json:"category"`
	Planned  decimal.Decimal `json:"planned"`
	Current  decimal.Decimal `json:"current"` //текущий committed
	Delta    decimal.Decimal `json:"delta"`
}

type AlertSeverity string

const (
	SeverityAmber AlertSeverity = "amber"
	SeverityRed   AlertSeverity = "red"
)

type BudgetAlert struct {
	Severity AlertSeverity   `json:"severity"`
	Category *BudgetCategory `json:"category,omitempty"` //nil = алерт по событию целиком
	Message  string          `json:"message"`
	Impact   string          `json:"impact"`
	Link     string          `json:"link"`
}

// BudgetReport все что нужно странице бюджета за один запрос
type BudgetReport struct {
	Summary    BudgetSummary    `json:"summary"`
	Categories []CategoryBudget `json:"categories"`
	TopDrivers []CostDriver     `json:"top_drivers"`
	Alerts     []BudgetAlert    `json:"alerts"`
}
