package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
	RSVPMaybe    RSVPStatus = "maybe"
)

type GuestSide string

const (
	SideBride  GuestSide = "bride"
	SideGroom  GuestSide = "groom"
	SideCommon GuestSide = "common"
)

type Guest struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	EventID       uuid.UUID  `json:"event_id" db:"event_id"`
	FamilyGroupID *uuid.UUID `json:"family_group_id,omitempty" db:"family_group_id"` //группировка, не владение: гость принадлежит событию
	Name          string     `json:"name" db:"name"`
	Email         string     `json:"email" db:"email"`
	Phone         string     `json:"phone" db:"phone"`
	Side          GuestSide  `json:"side" db:"side"`
	RSVPStatus    RSVPStatus `json:"rsvp_status" db:"rsvp_status"`
	RSVPCode      string     `json:"-" db:"rsvp_code"` //код для самостоятельного ответа по ссылке
	IsOutstation  bool       `json:"is_outstation" db:"is_outstation"`
	NeedsRoom     bool       `json:"needs_room" db:"needs_room"`
	RoomAssigned  bool       `json:"room_assigned" db:"room_assigned"`
	NeedsPickup   bool       `json:"needs_pickup" db:"needs_pickup"`
	PickupAssigned bool      `json:"pickup_assigned" db:"pickup_assigned"`
	PlusOnes      int        `json:"plus_ones" db:"plus_ones"`
	DietaryNotes  string     `json:"dietary_notes" db:"dietary_notes"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

type GuestCreate struct {
	FamilyGroupID *uuid.UUID `json:"family_group_id"`
	Name          string     `json:"name" binding:"required"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Side          GuestSide  `json:"side"`
	IsOutstation  bool       `json:"is_outstation"`
	NeedsRoom     bool       `json:"needs_room"`
	NeedsPickup   bool       `json:"needs_pickup"`
	PlusOnes      int        `json:"plus_ones"`
	DietaryNotes  string     `json:"dietary_notes"`
}

type GuestUpdate struct {
	FamilyGroupID  *uuid.UUID  `json:"family_group_id"`
	Name           *string     `json:"name"`
	Email          *string     `json:"email"`
	Phone          *string     `json:"phone"`
	Side           *GuestSide  `json:"side"`
	RSVPStatus     *RSVPStatus `json:"rsvp_status"` //оверрайд организатором
	IsOutstation   *bool       `json:"is_outstation"`
	NeedsRoom      *bool       `json:"needs_room"`
	RoomAssigned   *bool       `json:"room_assigned"`
	NeedsPickup    *bool       `json:"needs_pickup"`
	PickupAssigned *bool       `json:"pickup_assigned"`
	PlusOnes       *int        `json:"plus_ones"`
	DietaryNotes   *string     `json:"dietary_notes"`
}

type RSVPSubmit struct {
	Status RSVPStatus `json:"status" binding:"required"`
	Notes  string     `json:"notes"`
}

type FamilyGroup struct {
	ID        uuid.UUID `json:"id" db:"id"`
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	Name      string    `json:"name" db:"name"`
	HeadName  string    `json:"head_name" db:"head_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Guests []Guest `json:"guests,omitempty"`
}

// FamilyGroupCreate создает группу и всех ее гостей одной транзакцией
type FamilyGroupCreate struct {
	Name     string        `json:"name" binding:"required"`
	HeadName string        `json:"head_name"`
	Guests   []GuestCreate `json:"guests"`
}

// Вычисляются на лету из списка гостей

type GuestStats struct {
	Total            int `json:"total"`
	Accepted         int `json:"accepted"`
	Declined         int `json:"declined"`
	Maybe            int `json:"maybe"`
	Pending          int `json:"pending"`
	PlusOnes         int `json:"plus_ones"` //только у подтвердивших
	Outstation       int `json:"outstation"`
	RoomsRequired    int `json:"rooms_required"` //гости которым нужна комната
	RoomsAssigned    int `json:"rooms_assigned"`
	PickupsRequired  int `json:"pickups_required"`
	PickupsAssigned  int `json:"pickups_assigned"`
}

// RateConfig ставки события для прогноза расходов, задаются на событие а не глобально
type RateConfig struct {
	CateringPerHead      decimal.Decimal `json:"catering_per_head"`
	RoomCostPerNight     decimal.Decimal `json:"room_cost_per_night"`
	TransportCostPerSeat decimal.Decimal `json:"transport_cost_per_seat"`
	//производные от политики вызывающего (правило заселения и т.п.), не от прожектора
	RoomsNeeded          int `json:"rooms_needed"`
	TransportSeats       int `json:"transport_seats"`
	PendingRoomsDelta    int `json:"pending_rooms_delta"`    //доп комнаты если все pending подтвердятся
	PendingSeatsDelta    int `json:"pending_seats_delta"`
}

type CostImpact struct {
	Catering  decimal.Decimal `json:"catering"`
	Rooms     decimal.Decimal `json:"rooms"`
	Transport decimal.Decimal `json:"transport"`
	Total     decimal.Decimal `json:"total"`
}

// CostProjection текущие расходы по подтвержденным + сколько добавят pending
type CostProjection struct {
	Confirmed     CostImpact      `json:"confirmed"`
	PendingImpact decimal.Decimal `json:"pending_impact"`
}

type RateColor string

const (
	RateGreen RateColor = "green"
	RateAmber RateColor = "amber"
	RateRed   RateColor = "red"
)

type ConfirmationRate struct {
	Rate  int       `json:"rate"` //0-100
	Color RateColor `json:"color"`
}

type GuestAlert struct {
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
	Impact   string        `json:"impact"`
	Link     string        `json:"link"`
}
