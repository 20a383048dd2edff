package service

import (
	"context"
	"errors"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/planner"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

var ErrEntryNotFound = errors.New("budget entry not found")

type BudgetService interface {
	CreateEntry(ctx context.Context, userID, eventID uuid.UUID, input *models.BudgetEntryCreate) (*models.BudgetEntry, error)
	GetEntries(ctx context.Context, userID, eventID uuid.UUID, category string) ([]models.BudgetEntry, error)
	UpdateEntry(ctx context.Context, userID, eventID, entryID uuid.UUID, update *models.BudgetEntryUpdate) (*models.BudgetEntry, error)
	RecordPayment(ctx context.Context, userID, eventID, entryID uuid.UUID, input *models.PaymentCreate) (*models.BudgetEntry, error)
	DeleteEntry(ctx context.Context, userID, eventID, entryID uuid.UUID) error
	GetReport(ctx context.Context, userID, eventID uuid.UUID) (*models.BudgetReport, error)
}

type budgetService struct {
	entryRepo    repository.BudgetEntryRepository
	eventService EventService
}

func NewBudgetService(entryRepo repository.BudgetEntryRepository, eventService EventService) BudgetService {
	return &budgetService{
		entryRepo:    entryRepo,
		eventService: eventService,
	}
}

func (s *budgetService) CreateEntry(ctx context.Context, userID, eventID uuid.UUID, input *models.BudgetEntryCreate) (*models.BudgetEntry, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}

	entry := &models.BudgetEntry{
		EventID:   eventID,
		VendorID:  input.VendorID,
		Category:  models.ParseBudgetCategory(input.Category),
		Name:      input.Name,
		Planned:   input.Planned,
		Committed: input.Committed,
		Notes:     input.Notes,
	}
	if input.Paid != nil {
		entry.Paid = *input.Paid
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntries записи бюджета события, опционально сужается одной категорией
func (s *budgetService) GetEntries(ctx context.Context, userID, eventID uuid.UUID, category string) ([]models.BudgetEntry, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	if category != "" {
		return s.entryRepo.GetByCategory(ctx, eventID, models.ParseBudgetCategory(category))
	}
	return s.entryRepo.GetByEventID(ctx, eventID)
}

func (s *budgetService) UpdateEntry(ctx context.Context, userID, eventID, entryID uuid.UUID, update *models.BudgetEntryUpdate) (*models.BudgetEntry, error) {
	if _, err := s.getOwnedEntry(ctx, userID, eventID, entryID); err != nil {
		return nil, err
	}

	// категорию нормализуем до записи
	if update.Category != nil {
		normalized := string(models.ParseBudgetCategory(*update.Category))
		update.Category = &normalized
	}

	if err := s.entryRepo.Update(ctx, entryID, update); err != nil {
		return nil, err
	}
	return s.entryRepo.GetByID(ctx, entryID)
}

// RecordPayment увеличивает paid записи на сумму платежа
func (s *budgetService) RecordPayment(ctx context.Context, userID, eventID, entryID uuid.UUID, input *models.PaymentCreate) (*models.BudgetEntry, error) {
	if _, err := s.getOwnedEntry(ctx, userID, eventID, entryID); err != nil {
		return nil, err
	}

	if err := s.entryRepo.AddPayment(ctx, entryID, input.Amount); err != nil {
		return nil, err
	}
	return s.entryRepo.GetByID(ctx, entryID)
}

func (s *budgetService) DeleteEntry(ctx context.Context, userID, eventID, entryID uuid.UUID) error {
	if _, err := s.getOwnedEntry(ctx, userID, eventID, entryID); err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, entryID)
}

// GetReport сводка бюджета: категории, статус, топ расходов, алерты
func (s *budgetService) GetReport(ctx context.Context, userID, eventID uuid.UUID) (*models.BudgetReport, error) {
	event, err := s.eventService.GetOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	categories := planner.SummarizeByCategory(entries)
	summary := planner.SummarizeEvent(categories, event.TotalBudget)

	return &models.BudgetReport{
		Summary:    summary,
		Categories: categories,
		TopDrivers: planner.ComputeCostDrivers(categories, 5),
		Alerts:     planner.GenerateBudgetAlerts(summary, categories),
	}, nil
}

// getOwnedEntry запись должна существовать и принадлежать событию пользователя
func (s *budgetService) getOwnedEntry(ctx context.Context, userID, eventID, entryID uuid.UUID) (*models.BudgetEntry, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, ErrEntryNotFound
	}
	if entry.EventID != eventID {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}
