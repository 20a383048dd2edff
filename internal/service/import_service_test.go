package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

func TestParseGuestCSV(t *testing.T) {
	input := strings.Join([]string{
		"name,email,phone,side,is_outstation,needs_room,needs_pickup,plus_ones",
		"Анна Иванова,anna@example.com,+79990001122,bride,1,1,0,1",
		"Петр Сидоров,petr@example.com,,groom,no,no,yes,0",
		",missing@example.com,,common,0,0,0,0",
		"Без Email,,,,да,да,да,2",
		"Кривой Гость,bad@example.com,,common,0,0,0,abc",
	}, "\n")

	rows, rowErrors, err := ParseGuestCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 valid rows, got %d", len(rows))
	}
	if len(rowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %d", len(rowErrors))
	}

	first := rows[0]
	if first.Name != "Анна Иванова" || first.Email != "anna@example.com" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if !first.IsOutstation || !first.NeedsRoom || first.NeedsPickup {
		t.Errorf("bool fields parsed wrong: %+v", first)
	}
	if first.PlusOnes != 1 {
		t.Errorf("expected plus_ones 1, got %d", first.PlusOnes)
	}

	// русские "да"/"нет" в булевых колонках
	third := rows[2]
	if !third.IsOutstation || !third.NeedsRoom || !third.NeedsPickup {
		t.Errorf("cyrillic bool values not recognized: %+v", third)
	}

	// строка без имени и строка с нечисловым plus_ones попадают в ошибки
	if rowErrors[0].Line != 4 {
		t.Errorf("expected first error at line 4, got %d", rowErrors[0].Line)
	}
	if rowErrors[1].Line != 6 {
		t.Errorf("expected second error at line 6, got %d", rowErrors[1].Line)
	}
}

func TestParseGuestCSVColumnOrder(t *testing.T) {
	// порядок колонок не фиксирован, лишние игнорируются
	input := "email,unknown,name\na@b.c,x,Гость Первый\n"

	rows, rowErrors, err := ParseGuestCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrors)
	}
	if len(rows) != 1 || rows[0].Name != "Гость Первый" || rows[0].Email != "a@b.c" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestParseGuestCSVEmptyFile(t *testing.T) {
	_, _, err := ParseGuestCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyImportFile) {
		t.Fatalf("expected ErrEmptyImportFile, got %v", err)
	}
}

func TestParseGuestCSVMissingNameColumn(t *testing.T) {
	_, _, err := ParseGuestCSV(strings.NewReader("email,phone\na@b.c,123\n"))
	if !errors.Is(err, ErrBadImportHeader) {
		t.Fatalf("expected ErrBadImportHeader, got %v", err)
	}
}

// фейки покрывают только методы, которые ImportCSV реально зовет,
// остальное паникует через вложенный nil-интерфейс

type fakeEventService struct {
	EventService
	event *models.Event
}

func (f *fakeEventService) GetOwned(ctx context.Context, userID, eventID uuid.UUID) (*models.Event, error) {
	return f.event, nil
}

type fakeGuestRepo struct {
	repository.GuestRepository
	existing map[string]*models.Guest
	created  []*models.Guest
}

func (f *fakeGuestRepo) GetByEmail(ctx context.Context, eventID uuid.UUID, email string) (*models.Guest, error) {
	return f.existing[email], nil
}

func (f *fakeGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	f.created = append(f.created, guest)
	return nil
}

type fakeImportRepo struct {
	repository.GuestImportRepository
	lastStatus   string
	lastImported int
	lastSkipped  int
	lastFailed   int
}

func (f *fakeImportRepo) Create(ctx context.Context, imp *models.GuestImport) error {
	imp.ID = uuid.New()
	return nil
}

func (f *fakeImportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status, errMsg string, imported, skipped, failed int) error {
	f.lastStatus = status
	f.lastImported = imported
	f.lastSkipped = skipped
	f.lastFailed = failed
	return nil
}

func TestImportCSVDuplicateHandling(t *testing.T) {
	eventID := uuid.New()
	guestRepo := &fakeGuestRepo{
		//anna уже есть в базе события
		existing: map[string]*models.Guest{
			"anna@example.com": {ID: uuid.New(), EventID: eventID, Email: "anna@example.com"},
		},
	}
	importRepo := &fakeImportRepo{}
	svc := NewGuestImportService(importRepo, guestRepo, &fakeEventService{event: &models.Event{ID: eventID}})

	input := strings.Join([]string{
		"name,email",
		"Иван Петров,ivan@example.com",
		"Иван Дубль,IVAN@example.com", //дубль внутри файла, регистр не спасает
		"Анна Иванова,anna@example.com", //дубль против базы
		"Без Почты Один,",
		"Без Почты Два,", //пустые email между собой не дедуплицируются
		",broken@example.com",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), uuid.New(), eventID, "guests.csv", strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}

	if result.GuestsImported != 3 {
		t.Errorf("imported = %d, want 3 (иван + две строки без email)", result.GuestsImported)
	}
	if result.DuplicatesSkipped != 2 {
		t.Errorf("duplicates = %d, want 2 (внутри файла и против базы)", result.DuplicatesSkipped)
	}
	if result.RowsFailed != 1 {
		t.Errorf("failed = %d, want 1 (строка без имени)", result.RowsFailed)
	}

	if len(guestRepo.created) != 3 {
		t.Fatalf("created %d guests, want 3", len(guestRepo.created))
	}
	names := []string{guestRepo.created[0].Name, guestRepo.created[1].Name, guestRepo.created[2].Name}
	want := []string{"Иван Петров", "Без Почты Один", "Без Почты Два"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("created[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	//журнал импорта закрывается теми же счетчиками
	if importRepo.lastStatus != "completed" {
		t.Errorf("import status = %q, want completed", importRepo.lastStatus)
	}
	if importRepo.lastImported != 3 || importRepo.lastSkipped != 2 || importRepo.lastFailed != 1 {
		t.Errorf("журнал: imported=%d skipped=%d failed=%d, want 3/2/1",
			importRepo.lastImported, importRepo.lastSkipped, importRepo.lastFailed)
	}
}

func TestParseGuestSide(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bride", "bride"},
		{"GROOM", "groom"},
		{"", "common"},
		{"что-то", "common"},
	}

	for _, tt := range tests {
		if got := parseGuestSide(tt.in); string(got) != tt.want {
			t.Errorf("parseGuestSide(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
