// Package cron фоновые задачи: ежедневные напоминания гостям без ответа
// в последние недели перед событием и чистка протухших refresh-токенов.
package cron

import (
	"context"
	"time"

	"github.com/alligatorO15/wed-planner/internal/logger"
	"github.com/alligatorO15/wed-planner/internal/mailer"
	"github.com/alligatorO15/wed-planner/internal/planner"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/alligatorO15/wed-planner/internal/service"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron              *cron.Cron
	eventRepo         repository.EventRepository
	guestRepo         repository.GuestRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	invitationService service.InvitationService
	mailer            mailer.Mailer
}

func NewScheduler(repos *repository.Repositories, invitationService service.InvitationService, m mailer.Mailer) *Scheduler {
	return &Scheduler{
		cron:              cron.New(),
		eventRepo:         repos.Event,
		guestRepo:         repos.Guest,
		refreshTokenRepo:  repos.RefreshToken,
		invitationService: invitationService,
		mailer:            m,
	}
}

func (s *Scheduler) Start() {
	// ежедневно в полночь - напоминания не ответившим гостям
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		if err := s.SendRSVPReminders(context.Background()); err != nil {
			logger.Log.WithError(err).Error("rsvp reminder job failed")
		}
	})
	if err != nil {
		logger.Log.WithError(err).Error("failed to schedule rsvp reminder job")
	}

	// раз в сутки чистим истекшие refresh-токены
	_, err = s.cron.AddFunc("30 3 * * *", func() {
		if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
			logger.Log.WithError(err).Error("refresh token cleanup failed")
		}
	})
	if err != nil {
		logger.Log.WithError(err).Error("failed to schedule token cleanup job")
	}

	s.cron.Start()
	logger.Log.Info("cron jobs started (rsvp reminders daily at midnight, token cleanup at 03:30)")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// SendRSVPReminders рассылает напоминания pending-гостям событий,
// до которых осталось не больше planner.ReminderWindowDays дней
func (s *Scheduler) SendRSVPReminders(ctx context.Context) error {
	if !s.mailer.Enabled() {
		// без smtp напоминаний нет, это не ошибка
		return nil
	}

	now := time.Now()
	events, err := s.eventRepo.GetUpcoming(ctx, now, now.AddDate(0, 0, planner.ReminderWindowDays))
	if err != nil {
		return err
	}

	for i := range events {
		event := &events[i]

		guests, err := s.guestRepo.GetPendingWithEmail(ctx, event.ID)
		if err != nil {
			logger.Log.WithError(err).WithField("event_id", event.ID).Error("failed to load pending guests")
			continue
		}

		sent := 0
		for j := range guests {
			if err := s.invitationService.SendReminder(ctx, event, &guests[j]); err != nil {
				logger.Log.WithError(err).WithField("guest_id", guests[j].ID).Warn("failed to send rsvp reminder")
				continue
			}
			sent++
		}

		if sent > 0 {
			logger.Log.WithField("event_id", event.ID).Infof("sent %d rsvp reminders", sent)
		}
	}

	return nil
}
