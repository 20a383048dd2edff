package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	TxManager    TxManager
	User         UserRepository
	RefreshToken RefreshTokenRepository
	Event        EventRepository
	BudgetEntry  BudgetEntryRepository
	Guest        GuestRepository
	FamilyGroup  FamilyGroupRepository
	Vendor       VendorRepository
	Task         TaskRepository
	Invitation   InvitationRepository
	GuestImport  GuestImportRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TxManager:    NewTxManager(pool),
		User:         NewUserRepository(pool),
		RefreshToken: NewRefreshTokenRepository(pool),
		Event:        NewEventRepository(pool),
		BudgetEntry:  NewBudgetEntryRepository(pool),
		Guest:        NewGuestRepository(pool),
		FamilyGroup:  NewFamilyGroupRepository(pool),
		Vendor:       NewVendorRepository(pool),
		Task:         NewTaskRepository(pool),
		Invitation:   NewInvitationRepository(pool),
		GuestImport:  NewGuestImportRepository(pool),
	}
}
