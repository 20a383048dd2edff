package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskService interface {
	Create(ctx context.Context, userID, eventID uuid.UUID, input *models.TaskCreate) (*models.Task, error)
	GetByEventID(ctx context.Context, userID, eventID uuid.UUID) ([]models.Task, error)
	Update(ctx context.Context, userID, eventID, taskID uuid.UUID, update *models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, userID, eventID, taskID uuid.UUID) error
	GetSummary(ctx context.Context, userID, eventID uuid.UUID) (*models.TaskSummary, error)
}

type taskService struct {
	taskRepo     repository.TaskRepository
	eventService EventService
}

func NewTaskService(taskRepo repository.TaskRepository, eventService EventService) TaskService {
	return &taskService{
		taskRepo:     taskRepo,
		eventService: eventService,
	}
}

func (s *taskService) Create(ctx context.Context, userID, eventID uuid.UUID, input *models.TaskCreate) (*models.Task, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}

	task := &models.Task{
		EventID:  eventID,
		Title:    input.Title,
		Status:   models.TaskTodo,
		DueDate:  input.DueDate,
		Assignee: input.Assignee,
		Notes:    input.Notes,
	}
	if input.Category != nil {
		category := models.ParseBudgetCategory(*input.Category)
		task.Category = &category
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByEventID(ctx context.Context, userID, eventID uuid.UUID) ([]models.Task, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByEventID(ctx, eventID)
}

func (s *taskService) Update(ctx context.Context, userID, eventID, taskID uuid.UUID, update *models.TaskUpdate) (*models.Task, error) {
	if _, err := s.getOwnedTask(ctx, userID, eventID, taskID); err != nil {
		return nil, err
	}

	if update.Category != nil {
		normalized := string(models.ParseBudgetCategory(*update.Category))
		update.Category = &normalized
	}

	if err := s.taskRepo.Update(ctx, taskID, update); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *taskService) Delete(ctx context.Context, userID, eventID, taskID uuid.UUID) error {
	if _, err := s.getOwnedTask(ctx, userID, eventID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}

// GetSummary счетчики по статусам, просрочка и процент готовности
func (s *taskService) GetSummary(ctx context.Context, userID, eventID uuid.UUID) (*models.TaskSummary, error) {
	tasks, err := s.GetByEventID(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	summary := SummarizeTasks(tasks, time.Now())
	return &summary, nil
}

// SummarizeTasks вынесена отдельно, считается без походов в бд
func SummarizeTasks(tasks []models.Task, now time.Time) models.TaskSummary {
	var summary models.TaskSummary

	for _, t := range tasks {
		summary.Total++
		switch t.Status {
		case models.TaskDone:
			summary.Done++
		case models.TaskInProgress:
			summary.InProgress++
		default:
			summary.Todo++
		}
		// просрочены только незакрытые задачи с дедлайном в прошлом
		if t.Status != models.TaskDone && t.DueDate != nil && t.DueDate.Before(now) {
			summary.Overdue++
		}
	}

	if summary.Total > 0 {
		summary.CompletionRate = int(math.Round(100 * float64(summary.Done) / float64(summary.Total)))
	}
	return summary
}

func (s *taskService) getOwnedTask(ctx context.Context, userID, eventID, taskID uuid.UUID) (*models.Task, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	if task.EventID != eventID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
