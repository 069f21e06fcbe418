package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"inholiday/internal/domain"
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	userRepo       domain.UserRepository
	templateRepo   domain.TemplateRepository
	guestRepo      domain.GuestRepository
}

// NewInvitationService creates an InvitationService over the invitation
// repository and the repositories needed for details and existence checks.
func NewInvitationService(invitationRepo domain.InvitationRepository, userRepo domain.UserRepository,
	templateRepo domain.TemplateRepository, guestRepo domain.GuestRepository) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		templateRepo:   templateRepo,
		guestRepo:      guestRepo,
	}
}

func (s *invitationService) Order(ctx context.Context, input domain.InvitationOrder, clientID int) domain.Empty {
	if _, err := s.templateRepo.Get(ctx, input.TemplateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get template: %w", err))
	}

	inv := &domain.Invitation{
		Name:       input.Name,
		Status:     domain.OrderAccepted,
		StartDate:  input.StartDate,
		FinishDate: input.FinishDate,
		ClientID:   clientID,
		TemplateID: input.TemplateID,
	}
	if _, err := s.invitationRepo.Add(ctx, inv); err != nil {
		return domain.Fail(fmt.Errorf("failed to create invitation: %w", err))
	}
	return domain.Done()
}

func (s *invitationService) Details(ctx context.Context, id int) domain.Result[*domain.InvitationDetails] {
	inv, err := s.invitationRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Err[*domain.InvitationDetails](err)
		}
		return domain.Err[*domain.InvitationDetails](fmt.Errorf("failed to get invitation: %w", err))
	}
	tmpl, err := s.templateRepo.Get(ctx, inv.TemplateID)
	if err != nil {
		return domain.Err[*domain.InvitationDetails](fmt.Errorf("failed to get template: %w", err))
	}
	guests, err := s.guestRepo.ListByInvitationID(ctx, inv.ID)
	if err != nil {
		return domain.Err[*domain.InvitationDetails](fmt.Errorf("failed to list guests: %w", err))
	}
	return domain.Ok(&domain.InvitationDetails{Invitation: inv, Template: tmpl, Guests: guests})
}

func (s *invitationService) ListByClient(ctx context.Context, clientID int) domain.Result[[]*domain.InvitationSummary] {
	if _, err := s.userRepo.Get(ctx, clientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Err[[]*domain.InvitationSummary](err)
		}
		return domain.Err[[]*domain.InvitationSummary](fmt.Errorf("failed to get user: %w", err))
	}
	invs, err := s.invitationRepo.ListByClientID(ctx, clientID)
	if err != nil {
		return domain.Err[[]*domain.InvitationSummary](fmt.Errorf("failed to list invitations: %w", err))
	}
	summaries := make([]*domain.InvitationSummary, len(invs))
	for i, inv := range invs {
		summaries[i] = inv.Summary()
	}
	return domain.Ok(summaries)
}

func (s *invitationService) Update(ctx context.Context, input domain.InvitationUpdate) domain.Empty {
	old, err := s.invitationRepo.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get invitation: %w", err))
	}

	// Partial merge: nil means "leave unchanged". The owning client is never
	// reassigned.
	updated := &domain.Invitation{
		ID:         old.ID,
		Name:       old.Name,
		Link:       old.Link,
		Status:     old.Status,
		StartDate:  old.StartDate,
		FinishDate: old.FinishDate,
		ClientID:   old.ClientID,
		TemplateID: old.TemplateID,
	}
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Link != nil {
		updated.Link = input.Link
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.StartDate != nil {
		updated.StartDate = *input.StartDate
	}
	if input.FinishDate != nil {
		updated.FinishDate = *input.FinishDate
	}
	if input.TemplateID != nil {
		if _, err := s.templateRepo.Get(ctx, *input.TemplateID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Fail(err)
			}
			return domain.Fail(fmt.Errorf("failed to get template: %w", err))
		}
		updated.TemplateID = *input.TemplateID
	}

	// Publishing an order without an explicit link gets a generated slug;
	// the link column's unique key guards against collisions.
	if updated.Status == domain.OrderOnline && updated.Link == nil {
		link := uuid.NewString()
		updated.Link = &link
	}

	if err := s.invitationRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrExists) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to update invitation: %w", err))
	}
	return domain.Done()
}

func (s *invitationService) Delete(ctx context.Context, id int) domain.Empty {
	if _, err := s.invitationRepo.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get invitation: %w", err))
	}
	if _, err := s.invitationRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to delete invitation: %w", err))
	}
	return domain.Done()
}
