package service

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/planner"
	"github.com/google/uuid"
)

// DashboardService собирает сводку по событию для главной страницы
type DashboardService interface {
	GetDashboard(ctx context.Context, userID, eventID uuid.UUID) (*models.Dashboard, error)
}

type dashboardService struct {
	eventService  EventService
	budgetService BudgetService
	guestService  GuestService
	taskService   TaskService
}

func NewDashboardService(eventService EventService, budgetService BudgetService, guestService GuestService, taskService TaskService) DashboardService {
	return &dashboardService{
		eventService:  eventService,
		budgetService: budgetService,
		guestService:  guestService,
		taskService:   taskService,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID, eventID uuid.UUID) (*models.Dashboard, error) {
	event, err := s.eventService.GetOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgetService.GetReport(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	stats, err := s.guestService.GetStats(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	costs, err := s.guestService.GetCostProjection(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskService.GetSummary(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	daysUntil := event.DaysUntil(time.Now())

	return &models.Dashboard{
		Event:        *event,
		DaysUntil:    daysUntil,
		Budget:       *budget,
		Guests:       *stats,
		Confirmation: planner.CalculateConfirmationRate(stats.Accepted, stats.Total),
		Costs:        *costs,
		GuestAlerts:  planner.GenerateGuestAlerts(*stats, daysUntil),
		Tasks:        *tasks,
	}, nil
}
