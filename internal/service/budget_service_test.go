package service

import (
	"context"
	"testing"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

type fakeBudgetEntryRepo struct {
	repository.BudgetEntryRepository
	byEventCalls    int
	byCategoryCalls int
	lastCategory    models.BudgetCategory
}

func (f *fakeBudgetEntryRepo) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]models.BudgetEntry, error) {
	f.byEventCalls++
	return nil, nil
}

func (f *fakeBudgetEntryRepo) GetByCategory(ctx context.Context, eventID uuid.UUID, category models.BudgetCategory) ([]models.BudgetEntry, error) {
	f.byCategoryCalls++
	f.lastCategory = category
	return nil, nil
}

func TestGetEntriesCategoryFilter(t *testing.T) {
	eventID := uuid.New()
	repo := &fakeBudgetEntryRepo{}
	svc := NewBudgetService(repo, &fakeEventService{event: &models.Event{ID: eventID}})
	ctx := context.Background()
	userID := uuid.New()

	//без фильтра идем за всеми записями события
	if _, err := svc.GetEntries(ctx, userID, eventID, ""); err != nil {
		t.Fatalf("GetEntries: %v", err)
	}
	if repo.byEventCalls != 1 || repo.byCategoryCalls != 0 {
		t.Errorf("пустой фильтр: byEvent=%d byCategory=%d, want 1/0", repo.byEventCalls, repo.byCategoryCalls)
	}

	if _, err := svc.GetEntries(ctx, userID, eventID, "catering"); err != nil {
		t.Fatalf("GetEntries: %v", err)
	}
	if repo.byCategoryCalls != 1 || repo.lastCategory != models.CategoryCatering {
		t.Errorf("фильтр catering: calls=%d category=%s", repo.byCategoryCalls, repo.lastCategory)
	}

	//неизвестная категория нормализуется, а не пролезает в sql как есть
	if _, err := svc.GetEntries(ctx, userID, eventID, "fireworks"); err != nil {
		t.Fatalf("GetEntries: %v", err)
	}
	if repo.lastCategory != models.CategoryMiscellaneous {
		t.Errorf("unknown category = %s, want miscellaneous", repo.lastCategory)
	}
}
