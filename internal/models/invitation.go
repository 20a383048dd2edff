package models

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationDraft  InvitationStatus = "draft"
	InvitationSent   InvitationStatus = "sent"
	InvitationFailed InvitationStatus = "failed"
)

type InvitationChannel string

const (
	ChannelEmail InvitationChannel = "email"
)

type Invitation struct {
	ID           uuid.UUID         `json:"id" db:"id"`
	EventID      uuid.UUID         `json:"event_id" db:"event_id"`
	GuestID      uuid.UUID         `json:"guest_id" db:"guest_id"`
	TemplateCode string            `json:"template_code" db:"template_code"`
	Channel      InvitationChannel `json:"channel" db:"channel"`
	Status       InvitationStatus  `json:"status" db:"status"`
	ErrorMessage string            `json:"error_message,omitempty" db:"error_message"`
	SentAt       *time.Time        `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`

	Guest *Guest `json:"guest,omitempty"`
}

type InvitationSend struct {
	GuestID      uuid.UUID `json:"guest_id" binding:"required"`
	TemplateCode string    `json:"template_code"`
}

type InvitationBulkSend struct {
	TemplateCode string `json:"template_code"`
	PendingOnly  bool   `json:"pending_only"` //только гостям без ответа
}

type InvitationBulkResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
