package service

import (
	"context"
	"errors"
	"time"

	"github.com/alligatorO15/wed-planner/internal/config"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrForbidden     = errors.New("access denied")
)

type EventService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.EventCreate) (*models.Event, error)
	GetByID(ctx context.Context, userID, eventID uuid.UUID) (*models.Event, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Event, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, update *models.EventUpdate) (*models.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error

	// GetOwned проверка принадлежности события, используется остальными сервисами
	GetOwned(ctx context.Context, userID, eventID uuid.UUID) (*models.Event, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	taskRepo  repository.TaskRepository
	txManager repository.TxManager
	config    *config.Config
}

func NewEventService(eventRepo repository.EventRepository, taskRepo repository.TaskRepository, txManager repository.TxManager, cfg *config.Config) EventService {
	return &eventService{
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		txManager: txManager,
		config:    cfg,
	}
}

func (s *eventService) Create(ctx context.Context, userID uuid.UUID, input *models.EventCreate) (*models.Event, error) {
	currency := input.Currency
	if currency == "" {
		currency = s.config.DefaultCurrency
	}
	occupancy := input.RoomOccupancy
	if occupancy <= 0 {
		occupancy = 2
	}

	event := &models.Event{
		UserID:               userID,
		Name:                 input.Name,
		EventDate:            input.EventDate,
		Venue:                input.Venue,
		City:                 input.City,
		Currency:             currency,
		TotalBudget:          input.TotalBudget,
		CateringPerHead:      input.CateringPerHead,
		RoomCostPerNight:     input.RoomCostPerNight,
		TransportCostPerSeat: input.TransportCostPerSeat,
		RoomOccupancy:        occupancy,
		Notes:                input.Notes,
	}

	// событие и стартовый чеклист создаются атомарно
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.Create(ctx, event); err != nil {
			return err
		}
		return s.seedChecklist(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// seedChecklist заполняет чеклист стандартными задачами, дедлайны от даты события
func (s *eventService) seedChecklist(ctx context.Context, event *models.Event) error {
	for i, item := range models.DefaultChecklist {
		due := event.EventDate.AddDate(0, 0, -item.DaysBefore)
		// дедлайн в прошлом не имеет смысла, ставим сегодня
		if due.Before(time.Now()) {
			due = time.Now()
		}
		category := item.Category
		task := &models.Task{
			EventID:   event.ID,
			Title:     item.Title,
			Category:  &category,
			Status:    models.TaskTodo,
			DueDate:   &due,
			SortOrder: i,
		}
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return err
		}
	}
	return nil
}

func (s *eventService) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*models.Event, error) {
	return s.GetOwned(ctx, userID, eventID)
}

func (s *eventService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	return s.eventRepo.GetByUserID(ctx, userID)
}

func (s *eventService) Update(ctx context.Context, userID, eventID uuid.UUID, update *models.EventUpdate) (*models.Event, error) {
	if _, err := s.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, eventID, update); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if _, err := s.GetOwned(ctx, userID, eventID); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, eventID)
}

func (s *eventService) GetOwned(ctx context.Context, userID, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}
	if event.UserID != userID {
		// чужое событие не раскрываем даже фактом существования
		return nil, ErrEventNotFound
	}
	return event, nil
}
