package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/planner"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrGroupNotFound   = errors.New("family group not found")
	ErrInvalidRSVPCode = errors.New("invalid rsvp code")
	ErrInvalidRSVP     = errors.New("invalid rsvp status")
)

type GuestService interface {
	Create(ctx context.Context, userID, eventID uuid.UUID, input *models.GuestCreate) (*models.Guest, error)
	GetByID(ctx context.Context, userID, eventID, guestID uuid.UUID) (*models.Guest, error)
	GetByEventID(ctx context.Context, userID, eventID uuid.UUID) ([]models.Guest, error)
	Update(ctx context.Context, userID, eventID, guestID uuid.UUID, update *models.GuestUpdate) (*models.Guest, error)
	Delete(ctx context.Context, userID, eventID, guestID uuid.UUID) error

	CreateFamilyGroup(ctx context.Context, userID, eventID uuid.UUID, input *models.FamilyGroupCreate) (*models.FamilyGroup, error)
	GetFamilyGroups(ctx context.Context, userID, eventID uuid.UUID) ([]models.FamilyGroup, error)
	DeleteFamilyGroup(ctx context.Context, userID, eventID, groupID uuid.UUID) error

	// SubmitRSVP публичный ответ гостя по коду из приглашения, без авторизации
	SubmitRSVP(ctx context.Context, code string, input *models.RSVPSubmit) (*models.Guest, error)
	GetByRSVPCode(ctx context.Context, code string) (*models.Guest, error)

	GetStats(ctx context.Context, userID, eventID uuid.UUID) (*models.GuestStats, error)
	GetCostProjection(ctx context.Context, userID, eventID uuid.UUID) (*models.CostProjection, error)
	GetAlerts(ctx context.Context, userID, eventID uuid.UUID) ([]models.GuestAlert, error)
}

type guestService struct {
	guestRepo    repository.GuestRepository
	groupRepo    repository.FamilyGroupRepository
	txManager    repository.TxManager
	eventService EventService
}

func NewGuestService(guestRepo repository.GuestRepository, groupRepo repository.FamilyGroupRepository, txManager repository.TxManager, eventService EventService) GuestService {
	return &guestService{
		guestRepo:    guestRepo,
		groupRepo:    groupRepo,
		txManager:    txManager,
		eventService: eventService,
	}
}

func (s *guestService) Create(ctx context.Context, userID, eventID uuid.UUID, input *models.GuestCreate) (*models.Guest, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}

	guest, err := buildGuest(eventID, input)
	if err != nil {
		return nil, err
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// buildGuest заполняет гостя из инпута и выдает ему rsvp-код
func buildGuest(eventID uuid.UUID, input *models.GuestCreate) (*models.Guest, error) {
	code, err := generateRSVPCode()
	if err != nil {
		return nil, err
	}

	return &models.Guest{
		EventID:       eventID,
		FamilyGroupID: input.FamilyGroupID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Side:          input.Side,
		RSVPStatus:    models.RSVPPending,
		RSVPCode:      code,
		IsOutstation:  input.IsOutstation,
		NeedsRoom:     input.NeedsRoom,
		NeedsPickup:   input.NeedsPickup,
		PlusOnes:      input.PlusOnes,
		DietaryNotes:  input.DietaryNotes,
	}, nil
}

func generateRSVPCode() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func (s *guestService) GetByID(ctx context.Context, userID, eventID, guestID uuid.UUID) (*models.Guest, error) {
	return s.getOwnedGuest(ctx, userID, eventID, guestID)
}

func (s *guestService) GetByEventID(ctx context.Context, userID, eventID uuid.UUID) ([]models.Guest, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.guestRepo.GetByEventID(ctx, eventID)
}

// Update организатор правит любые поля гостя, включая оверрайд rsvp-статуса
func (s *guestService) Update(ctx context.Context, userID, eventID, guestID uuid.UUID, update *models.GuestUpdate) (*models.Guest, error) {
	if _, err := s.getOwnedGuest(ctx, userID, eventID, guestID); err != nil {
		return nil, err
	}

	if update.RSVPStatus != nil && !validRSVPStatus(*update.RSVPStatus) {
		return nil, ErrInvalidRSVP
	}

	if err := s.guestRepo.Update(ctx, guestID, update); err != nil {
		return nil, err
	}
	return s.guestRepo.GetByID(ctx, guestID)
}

func (s *guestService) Delete(ctx context.Context, userID, eventID, guestID uuid.UUID) error {
	if _, err := s.getOwnedGuest(ctx, userID, eventID, guestID); err != nil {
		return err
	}
	return s.guestRepo.Delete(ctx, guestID)
}

// CreateFamilyGroup группа и все ее гости создаются одной транзакцией
func (s *guestService) CreateFamilyGroup(ctx context.Context, userID, eventID uuid.UUID, input *models.FamilyGroupCreate) (*models.FamilyGroup, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}

	group := &models.FamilyGroup{
		EventID:  eventID,
		Name:     input.Name,
		HeadName: input.HeadName,
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.groupRepo.Create(ctx, group); err != nil {
			return err
		}
		for i := range input.Guests {
			guestInput := input.Guests[i]
			guestInput.FamilyGroupID = &group.ID
			guest, err := buildGuest(eventID, &guestInput)
			if err != nil {
				return err
			}
			if err := s.guestRepo.Create(ctx, guest); err != nil {
				return err
			}
			group.Guests = append(group.Guests, *guest)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

func (s *guestService) GetFamilyGroups(ctx context.Context, userID, eventID uuid.UUID) ([]models.FamilyGroup, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.groupRepo.GetByEventID(ctx, eventID)
}

func (s *guestService) DeleteFamilyGroup(ctx context.Context, userID, eventID, groupID uuid.UUID) error {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return err
	}
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil || group.EventID != eventID {
		return ErrGroupNotFound
	}
	return s.groupRepo.Delete(ctx, groupID)
}

func (s *guestService) SubmitRSVP(ctx context.Context, code string, input *models.RSVPSubmit) (*models.Guest, error) {
	if !validRSVPStatus(input.Status) {
		return nil, ErrInvalidRSVP
	}

	guest, err := s.guestRepo.GetByRSVPCode(ctx, code)
	if err != nil {
		return nil, ErrInvalidRSVPCode
	}

	if err := s.guestRepo.UpdateRSVPStatus(ctx, guest.ID, input.Status); err != nil {
		return nil, err
	}
	guest.RSVPStatus = input.Status
	return guest, nil
}

func (s *guestService) GetByRSVPCode(ctx context.Context, code string) (*models.Guest, error) {
	guest, err := s.guestRepo.GetByRSVPCode(ctx, code)
	if err != nil {
		return nil, ErrInvalidRSVPCode
	}
	return guest, nil
}

func (s *guestService) GetStats(ctx context.Context, userID, eventID uuid.UUID) (*models.GuestStats, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	stats := planner.CollectGuestStats(guests)
	return &stats, nil
}

// GetCostProjection текущие расходы по подтвержденным гостям и дельта
// если все pending подтвердятся
func (s *guestService) GetCostProjection(ctx context.Context, userID, eventID uuid.UUID) (*models.CostProjection, error) {
	event, err := s.eventService.GetOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	rc := deriveRateConfig(event, guests)

	confirmedHeads := 0
	pendingHeads := 0
	for _, g := range guests {
		switch g.RSVPStatus {
		case models.RSVPAccepted:
			confirmedHeads += 1 + g.PlusOnes
		case models.RSVPPending, models.RSVPMaybe:
			pendingHeads += 1 + g.PlusOnes
		}
	}

	return &models.CostProjection{
		Confirmed:     planner.CalculateGuestCosts(confirmedHeads, rc),
		PendingImpact: planner.ProjectPendingImpact(pendingHeads, rc),
	}, nil
}

// deriveRateConfig переводит потребности гостей в комнаты и места.
// Правило заселения: room_occupancy человек на комнату, гость занимает
// место вместе со своими plus ones.
func deriveRateConfig(event *models.Event, guests []models.Guest) models.RateConfig {
	occupancy := event.RoomOccupancy
	if occupancy <= 0 {
		occupancy = 2
	}

	var confirmedBeds, confirmedSeats int
	var pendingBeds, pendingSeats int
	for _, g := range guests {
		heads := 1 + g.PlusOnes
		switch g.RSVPStatus {
		case models.RSVPAccepted:
			if g.NeedsRoom {
				confirmedBeds += heads
			}
			if g.NeedsPickup {
				confirmedSeats += heads
			}
		case models.RSVPPending, models.RSVPMaybe:
			if g.NeedsRoom {
				pendingBeds += heads
			}
			if g.NeedsPickup {
				pendingSeats += heads
			}
		}
	}

	rc := event.RateConfigBase()
	rc.RoomsNeeded = ceilDiv(confirmedBeds, occupancy)
	rc.TransportSeats = confirmedSeats
	// дельта комнат считается от общего числа мест, а не отдельным округлением
	rc.PendingRoomsDelta = ceilDiv(confirmedBeds+pendingBeds, occupancy) - rc.RoomsNeeded
	rc.PendingSeatsDelta = pendingSeats
	return rc
}

func ceilDiv(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (s *guestService) GetAlerts(ctx context.Context, userID, eventID uuid.UUID) ([]models.GuestAlert, error) {
	event, err := s.eventService.GetOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	stats := planner.CollectGuestStats(guests)
	return planner.GenerateGuestAlerts(stats, event.DaysUntil(time.Now())), nil
}

func (s *guestService) getOwnedGuest(ctx context.Context, userID, eventID, guestID uuid.UUID) (*models.Guest, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, ErrGuestNotFound
	}
	if guest.EventID != eventID {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

func validRSVPStatus(status models.RSVPStatus) bool {
	switch status {
	case models.RSVPAccepted, models.RSVPDeclined, models.RSVPMaybe, models.RSVPPending:
		return true
	}
	return false
}
