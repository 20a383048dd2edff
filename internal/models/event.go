package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Name        string          `json:"name" db:"name"`
	EventDate   time.Time       `json:"event_date" db:"event_date"`
	Venue       string          `json:"venue" db:"venue"`
	City        string          `json:"city" db:"city"`
	Currency    string          `json:"currency" db:"currency"`
	TotalBudget decimal.Decimal `json:"total_budget" db:"total_budget"` //потолок бюджета, 0 = не задан

	//ставки для прогноза расходов по гостям, на событие а не глобально
	CateringPerHead      decimal.Decimal `json:"catering_per_head" db:"catering_per_head"`
	RoomCostPerNight     decimal.Decimal `json:"room_cost_per_night" db:"room_cost_per_night"`
	TransportCostPerSeat decimal.Decimal `json:"transport_cost_per_seat" db:"transport_cost_per_seat"`
	RoomOccupancy        int             `json:"room_occupancy" db:"room_occupancy"` //гостей на комнату, дефолт 2

	Notes     string     `json:"notes" db:"notes"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// RateConfig собирает ставки события для прожектора расходов
func (e *Event) RateConfigBase() RateConfig {
	return RateConfig{
		CateringPerHead:      e.CateringPerHead,
		RoomCostPerNight:     e.RoomCostPerNight,
		TransportCostPerSeat: e.TransportCostPerSeat,
	}
}

// DaysUntil сколько дней осталось до события, отрицательное если прошло
func (e *Event) DaysUntil(now time.Time) int {
	//считаем по календарным дням, не по 24ч интервалам
	y1, m1, d1 := now.Date()
	y2, m2, d2 := e.EventDate.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

type EventCreate struct {
	Name                 string           `json:"name" binding:"required"`
	EventDate            time.Time        `json:"event_date" binding:"required"`
	Venue                string           `json:"venue"`
	City                 string           `json:"city"`
	Currency             string           `json:"currency"`
	TotalBudget          decimal.Decimal  `json:"total_budget"`
	CateringPerHead      decimal.Decimal  `json:"catering_per_head"`
	RoomCostPerNight     decimal.Decimal  `json:"room_cost_per_night"`
	TransportCostPerSeat decimal.Decimal  `json:"transport_cost_per_seat"`
	RoomOccupancy        int              `json:"room_occupancy"`
	Notes                string           `json:"notes"`
}

type EventUpdate struct {
	Name                 *string          `json:"name"`
	EventDate            *time.Time       `json:"event_date"`
	Venue                *string          `json:"venue"`
	City                 *string          `json:"city"`
	Currency             *string          `json:"currency"`
	TotalBudget          *decimal.Decimal `json:"total_budget"`
	CateringPerHead      *decimal.Decimal `json:"catering_per_head"`
	RoomCostPerNight     *decimal.Decimal `json:"room_cost_per_night"`
	TransportCostPerSeat *decimal.Decimal `json:"transport_cost_per_seat"`
	RoomOccupancy        *int             `json:"room_occupancy"`
	Notes                *string          `json:"notes"`
}

// Dashboard сводка по событию для главной страницы
type Dashboard struct {
	Event          Event            `json:"event"`
	DaysUntil      int              `json:"days_until"`
	Budget         BudgetReport     `json:"budget"`
	Guests         GuestStats       `json:"guests"`
	Confirmation   ConfirmationRate `json:"confirmation"`
	Costs          CostProjection   `json:"costs"`
	GuestAlerts    []GuestAlert     `json:"guest_alerts"`
	Tasks          TaskSummary      `json:"tasks"`
}
