package service

import (
	"github.com/alligatorO15/wed-planner/internal/config"
	"github.com/alligatorO15/wed-planner/internal/mailer"
	"github.com/alligatorO15/wed-planner/internal/repository"
)

type Services struct {
	Auth        AuthService
	User        UserService
	Event       EventService
	Budget      BudgetService
	Guest       GuestService
	Vendor      VendorService
	Task        TaskService
	Invitation  InvitationService
	GuestImport GuestImportService
	Dashboard   DashboardService
}

func NewServices(repos *repository.Repositories, m mailer.Mailer, templates *config.TemplateSet, cfg *config.Config) *Services {
	eventService := NewEventService(repos.Event, repos.Task, repos.TxManager, cfg)
	budgetService := NewBudgetService(repos.BudgetEntry, eventService)
	guestService := NewGuestService(repos.Guest, repos.FamilyGroup, repos.TxManager, eventService)
	taskService := NewTaskService(repos.Task, eventService)

	return &Services{
		Auth:        NewAuthService(repos.User, repos.RefreshToken, cfg),
		User:        NewUserService(repos.User),
		Event:       eventService,
		Budget:      budgetService,
		Guest:       guestService,
		Vendor:      NewVendorService(repos.Vendor),
		Task:        taskService,
		Invitation:  NewInvitationService(repos.Invitation, repos.Guest, eventService, m, templates, cfg),
		GuestImport: NewGuestImportService(repos.GuestImport, repos.Guest, eventService),
		Dashboard:   NewDashboardService(eventService, budgetService, guestService, taskService),
	}
}
