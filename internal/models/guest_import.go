package models

import (
	"time"

	"github.com/google/uuid"
)

// GuestImport лог одной загрузки csv со списком гостей
type GuestImport struct {
	ID                uuid.UUID `json:"id" db:"id"`
	EventID           uuid.UUID `json:"event_id" db:"event_id"`
	FileName          string    `json:"file_name" db:"file_name"`
	Status            string    `json:"status" db:"status"` //pending/completed/failed
	ErrorMessage      string    `json:"error_message" db:"error_message"`
	GuestsImported    int       `json:"guests_imported" db:"guests_imported"`
	DuplicatesSkipped int       `json:"duplicates_skipped" db:"duplicates_skipped"`
	RowsFailed        int       `json:"rows_failed" db:"rows_failed"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// GuestImportRow распарсенная строка csv до валидации
type GuestImportRow struct {
	Line         int
	Name         string
	Email        string
	Phone        string
	Side         string
	IsOutstation bool
	NeedsRoom    bool
	NeedsPickup  bool
	PlusOnes     int
}

type GuestImportRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type GuestImportResult struct {
	ImportID          uuid.UUID             `json:"import_id"`
	GuestsImported    int                   `json:"guests_imported"`
	DuplicatesSkipped int                   `json:"duplicates_skipped"`
	RowsFailed        int                   `json:"rows_failed"`
	Errors            []GuestImportRowError `json:"errors,omitempty"`
}
