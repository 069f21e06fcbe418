package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inholiday/internal/domain"
)

type guestService struct {
	guestRepo      domain.GuestRepository
	invitationRepo domain.InvitationRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	logger         *slog.Logger
}

// NewGuestService creates a GuestService. emailService may be nil, in which
// case owners are not notified.
func NewGuestService(guestRepo domain.GuestRepository, invitationRepo domain.InvitationRepository,
	userRepo domain.UserRepository, emailService domain.EmailService, logger *slog.Logger) domain.GuestService {
	return &guestService{
		guestRepo:      guestRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		logger:         logger,
	}
}

func (s *guestService) TakeInvitation(ctx context.Context, input domain.GuestResponseInput) domain.Empty {
	invitation, err := s.invitationRepo.Get(ctx, input.InvitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get invitation: %w", err))
	}

	guest := &domain.Guest{
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		InvitationID: invitation.ID,
		RespondedAt:  time.Now(),
	}
	created, err := s.guestRepo.Add(ctx, guest)
	if err != nil {
		// Duplicate phone per invitation surfaces from the database
		// constraint, not an application pre-check.
		if errors.Is(err, domain.ErrExists) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to register guest: %w", err))
	}

	s.notifyOwner(ctx, invitation, created)
	return domain.Done()
}

// notifyOwner emails the invitation owner about the new response.
// Best-effort: a mail failure never fails the response itself.
func (s *guestService) notifyOwner(ctx context.Context, invitation *domain.Invitation, guest *domain.Guest) {
	if s.emailService == nil {
		return
	}
	owner, err := s.userRepo.Get(ctx, invitation.ClientID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load invitation owner for notification",
			"invitation_id", invitation.ID, "err", err)
		return
	}
	data := &domain.GuestResponseEmailData{
		OwnerName:      owner.Name,
		OwnerEmail:     owner.Email,
		GuestName:      guest.Name,
		GuestPhone:     guest.PhoneNumber,
		InvitationName: invitation.Name,
		RespondedAt:    guest.RespondedAt,
	}
	if err := s.emailService.SendGuestResponse(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "failed to send guest response notification",
			"invitation_id", invitation.ID, "err", err)
	}
}

func (s *guestService) Delete(ctx context.Context, id int) domain.Empty {
	if _, err := s.guestRepo.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get guest: %w", err))
	}
	if _, err := s.guestRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to delete guest: %w", err))
	}
	return domain.Done()
}
