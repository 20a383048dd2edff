package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"
	"time"

	"github.com/alligatorO15/wed-planner/internal/config"
	"github.com/alligatorO15/wed-planner/internal/logger"
	"github.com/alligatorO15/wed-planner/internal/mailer"
	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound = errors.New("message template not found")
	ErrGuestNoEmail     = errors.New("guest has no email")
)

type InvitationService interface {
	Send(ctx context.Context, userID, eventID uuid.UUID, input *models.InvitationSend) (*models.Invitation, error)
	SendBulk(ctx context.Context, userID, eventID uuid.UUID, input *models.InvitationBulkSend) (*models.InvitationBulkResult, error)
	GetByEventID(ctx context.Context, userID, eventID uuid.UUID) ([]models.Invitation, error)

	// SendReminder письмо-напоминание гостю без ответа, вызывается кроном
	SendReminder(ctx context.Context, event *models.Event, guest *models.Guest) error
}

type invitationService struct {
	invitationRepo repository.InvitationRepository
	guestRepo      repository.GuestRepository
	eventService   EventService
	mailer         mailer.Mailer
	templates      *config.TemplateSet
	publicBaseURL  string
}

func NewInvitationService(invitationRepo repository.InvitationRepository, guestRepo repository.GuestRepository, eventService EventService, m mailer.Mailer, templates *config.TemplateSet, cfg *config.Config) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		guestRepo:      guestRepo,
		eventService:   eventService,
		mailer:         m,
		templates:      templates,
		publicBaseURL:  cfg.PublicBaseURL,
	}
}

// templateData плейсхолдеры, доступные в шаблонах писем
type templateData struct {
	GuestName string
	EventName string
	EventDate string
	Venue     string
	RSVPLink  string
}

func (s *invitationService) Send(ctx context.Context, userID, eventID uuid.UUID, input *models.InvitationSend) (*models.Invitation, error) {
	event, err := s.eventService.GetOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	guest, err := s.guestRepo.GetByID(ctx, input.GuestID)
	if err != nil || guest.EventID != eventID {
		return nil, ErrGuestNotFound
	}

	tmpl, ok := s.templates.FindInvitation(input.TemplateCode)
	if !ok {
		return nil, ErrTemplateNotFound
	}

	return s.deliver(ctx, event, guest, tmpl)
}

// SendBulk рассылка всем гостям события с email, по умолчанию всем,
// с pending_only только не ответившим
func (s *invitationService) SendBulk(ctx context.Context, userID, eventID uuid.UUID, input *models.InvitationBulkSend) (*models.InvitationBulkResult, error) {
	event, err := s.eventService.GetOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	tmpl, ok := s.templates.FindInvitation(input.TemplateCode)
	if !ok {
		return nil, ErrTemplateNotFound
	}

	guests, err := s.guestRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := &models.InvitationBulkResult{}
	for i := range guests {
		guest := &guests[i]
		if guest.Email == "" {
			continue
		}
		if input.PendingOnly && guest.RSVPStatus != models.RSVPPending {
			continue
		}

		inv, err := s.deliver(ctx, event, guest, tmpl)
		if err != nil {
			// ошибка создания записи, не доставки
			return nil, err
		}
		if inv.Status == models.InvitationSent {
			result.Sent++
		} else {
			result.Failed++
		}
	}
	return result, nil
}

// deliver создает запись приглашения и пытается отправить письмо.
// Неудачная доставка не ошибка вызова: письмо остается failed и видно в списке.
func (s *invitationService) deliver(ctx context.Context, event *models.Event, guest *models.Guest, tmpl config.MessageTemplate) (*models.Invitation, error) {
	inv := &models.Invitation{
		EventID:      event.ID,
		GuestID:      guest.ID,
		TemplateCode: tmpl.Code,
		Channel:      models.ChannelEmail,
		Status:       models.InvitationDraft,
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	if guest.Email == "" {
		inv.Status = models.InvitationFailed
		inv.ErrorMessage = ErrGuestNoEmail.Error()
		_ = s.invitationRepo.MarkFailed(ctx, inv.ID, inv.ErrorMessage)
		return inv, nil
	}

	subject, body, err := s.render(tmpl, event, guest)
	if err != nil {
		inv.Status = models.InvitationFailed
		inv.ErrorMessage = err.Error()
		_ = s.invitationRepo.MarkFailed(ctx, inv.ID, inv.ErrorMessage)
		return inv, nil
	}

	if err := s.mailer.Send(guest.Email, subject, body); err != nil {
		logger.Log.WithError(err).WithField("guest_id", guest.ID).Error("failed to send invitation")
		inv.Status = models.InvitationFailed
		inv.ErrorMessage = err.Error()
		_ = s.invitationRepo.MarkFailed(ctx, inv.ID, inv.ErrorMessage)
		return inv, nil
	}

	now := time.Now()
	inv.Status = models.InvitationSent
	inv.SentAt = &now
	if err := s.invitationRepo.MarkSent(ctx, inv.ID, now); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invitationService) render(tmpl config.MessageTemplate, event *models.Event, guest *models.Guest) (string, string, error) {
	data := templateData{
		GuestName: guest.Name,
		EventName: event.Name,
		EventDate: event.EventDate.Format("02.01.2006"),
		Venue:     event.Venue,
		RSVPLink:  fmt.Sprintf("%s/rsvp/%s", s.publicBaseURL, guest.RSVPCode),
	}

	subject, err := renderTemplate("subject", tmpl.Subject, data)
	if err != nil {
		return "", "", err
	}
	body, err := renderTemplate("body", tmpl.Body, data)
	if err != nil {
		return "", "", err
	}
	return subject, body, nil
}

func renderTemplate(name, text string, data templateData) (string, error) {
	t, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *invitationService) GetByEventID(ctx context.Context, userID, eventID uuid.UUID) ([]models.Invitation, error) {
	if _, err := s.eventService.GetOwned(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.invitationRepo.GetByEventID(ctx, eventID)
}

// SendReminder не создает запись приглашения: напоминания шлются кроном
// повторно и не должны засорять историю рассылки
func (s *invitationService) SendReminder(ctx context.Context, event *models.Event, guest *models.Guest) error {
	if guest.Email == "" {
		return ErrGuestNoEmail
	}

	tmpl, ok := s.templates.FindReminder("")
	if !ok {
		return ErrTemplateNotFound
	}

	subject, body, err := s.render(tmpl, event, guest)
	if err != nil {
		return err
	}
	return s.mailer.Send(guest.Email, subject, body)
}
