package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alligatorO15/wed-planner/internal/logger"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrEmptyImportFile = errors.New("import file is empty")
	ErrBadImportHeader = errors.New("import file must have a 'name' column")
)

type GuestImportService interface {
	ImportCSV(ctx context.Context, userID, eventID uuid.UUID, fileName string, r io.Reader) (*models.GuestImportResult, error)
	GetHistory(ctx context.Context, userID, eventID uuid.UUID) ([]models.GuestImport, error)
}

type guestImportService struct {
	importRepo   repository.GuestImportRepository
	guestRepo    repository.GuestRepository
	eventService EventService
}

func NewGuestImportService(importRepo repository.GuestImportRepository, guestRepo repository.GuestRepository, eventService EventService) GuestImportService {
	return &guestImportService{
		importRepo:   importRepo,
		guestRepo:    guestRepo,
		eventService: eventService,
	}
}

// ImportCSV грузит список гостей из csv. Дубли по email внутри события
// пропускаются, битые строки не валят остальной импорт.
func (s *guestImportService) ImportCSV(ctx context.Context, userID, eventID uuid.UUID, fileName string, r io.Reader) (*models.GuestImportResult, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}

	imp := &models.GuestImport{
		EventID:  eventID,
		FileName: fileName,
		Status:   "pending",
	}
	if err := s.importRepo.Create(ctx, imp); err != nil {
		return nil, err
	}

	rows, rowErrors, err := ParseGuestCSV(r)
	if err != nil {
		_ = s.importRepo.UpdateStatus(ctx, imp.ID, "failed", err.Error(), 0, 0, 0)
		return nil, err
	}

	result := &models.GuestImportResult{
		ImportID: imp.ID,
		Errors:   rowErrors,
	}

	//дубли внутри самого файла тоже считаем дублями
	seen := make(map[string]bool)

	for _, row := range rows {
		email := strings.ToLower(strings.TrimSpace(row.Email))

		if email != "" {
			if seen[email] {
				result.DuplicatesSkipped++
				continue
			}
			existing, err := s.guestRepo.GetByEmail(ctx, eventID, email)
			if err != nil {
				result.Errors = append(result.Errors, models.GuestImportRowError{Line: row.Line, Reason: err.Error()})
				continue
			}
			if existing != nil {
				result.DuplicatesSkipped++
				seen[email] = true
				continue
			}
		}

		guest, err := buildGuest(eventID, &models.GuestCreate{
			Name:         row.Name,
			Email:        row.Email,
			Phone:        row.Phone,
			Side:         parseGuestSide(row.Side),
			IsOutstation: row.IsOutstation,
			NeedsRoom:    row.NeedsRoom,
			NeedsPickup:  row.NeedsPickup,
			PlusOnes:     row.PlusOnes,
		})
		if err != nil {
			result.Errors = append(result.Errors, models.GuestImportRowError{Line: row.Line, Reason: err.Error()})
			continue
		}
		if err := s.guestRepo.Create(ctx, guest); err != nil {
			result.Errors = append(result.Errors, models.GuestImportRowError{Line: row.Line, Reason: err.Error()})
			continue
		}

		result.GuestsImported++
		if email != "" {
			seen[email] = true
		}
	}

	result.RowsFailed = len(result.Errors)

	if err := s.importRepo.UpdateStatus(ctx, imp.ID, "completed", "", result.GuestsImported, result.DuplicatesSkipped, result.RowsFailed); err != nil {
		logger.Log.WithError(err).Error("failed to finalize guest import log")
	}

	return result, nil
}

func (s *guestImportService) GetHistory(ctx context.Context, userID, eventID uuid.UUID) ([]models.GuestImport, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.importRepo.GetByEventID(ctx, eventID)
}

// ParseGuestCSV разбирает csv с обязательной шапкой. Ожидаемые колонки:
// name, email, phone, side, is_outstation, needs_room, needs_pickup, plus_ones.
// Порядок колонок любой, лишние игнорируются.
func ParseGuestCSV(r io.Reader) ([]models.GuestImportRow, []models.GuestImportRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyImportFile
	}
	if err != nil {
		return nil, nil, err
	}

	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, nil, ErrBadImportHeader
	}

	var rows []models.GuestImportRow
	var rowErrors []models.GuestImportRowError
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrors = append(rowErrors, models.GuestImportRowError{Line: line, Reason: err.Error()})
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		name := field("name")
		if name == "" {
			rowErrors = append(rowErrors, models.GuestImportRowError{Line: line, Reason: "name is required"})
			continue
		}

		plusOnes := 0
		if raw := field("plus_ones"); raw != "" {
			plusOnes, err = strconv.Atoi(raw)
			if err != nil || plusOnes < 0 {
				rowErrors = append(rowErrors, models.GuestImportRowError{Line: line, Reason: fmt.Sprintf("invalid plus_ones value %q", raw)})
				continue
			}
		}

		rows = append(rows, models.GuestImportRow{
			Line:         line,
			Name:         name,
			Email:        field("email"),
			Phone:        field("phone"),
			Side:         field("side"),
			IsOutstation: parseBoolField(field("is_outstation")),
			NeedsRoom:    parseBoolField(field("needs_room")),
			NeedsPickup:  parseBoolField(field("needs_pickup")),
			PlusOnes:     plusOnes,
		})
	}

	return rows, rowErrors, nil
}

// parseBoolField толерантен к ручному заполнению таблиц
func parseBoolField(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "да":
		return true
	}
	return false
}

func parseGuestSide(s string) models.GuestSide {
	switch models.GuestSide(strings.ToLower(strings.TrimSpace(s))) {
	case models.SideBride:
		return models.SideBride
	case models.SideGroom:
		return models.SideGroom
	default:
		return models.SideCommon
	}
}
