package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inholiday/internal/domain"
)

type eventTypeService struct {
	eventTypeRepo domain.EventTypeRepository
}

// NewEventTypeService creates an EventTypeService over the event type repository.
func NewEventTypeService(eventTypeRepo domain.EventTypeRepository) domain.EventTypeService {
	return &eventTypeService{eventTypeRepo: eventTypeRepo}
}

func (s *eventTypeService) List(ctx context.Context) domain.Result[[]*domain.EventType] {
	types, err := s.eventTypeRepo.GetAll(ctx)
	if err != nil {
		return domain.Err[[]*domain.EventType](fmt.Errorf("failed to list event types: %w", err))
	}
	return domain.Ok(types)
}

func (s *eventTypeService) Add(ctx context.Context, name string) domain.Empty {
	name = strings.TrimSpace(name)
	if _, err := s.eventTypeRepo.GetByName(ctx, name); err == nil {
		return domain.Fail(domain.Existsf("event type with name %q already exists", name))
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Fail(fmt.Errorf("failed to check event type name: %w", err))
	}

	if _, err := s.eventTypeRepo.Add(ctx, &domain.EventType{Name: name}); err != nil {
		if errors.Is(err, domain.ErrExists) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to create event type: %w", err))
	}
	return domain.Done()
}

func (s *eventTypeService) Update(ctx context.Context, id int, newName string) domain.Empty {
	eventType, err := s.eventTypeRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get event type: %w", err))
	}

	newName = strings.TrimSpace(newName)
	if _, err := s.eventTypeRepo.GetByName(ctx, newName); err == nil {
		return domain.Fail(domain.Existsf("event type with name %q already exists", newName))
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Fail(fmt.Errorf("failed to check event type name: %w", err))
	}

	eventType.Name = newName
	if err := s.eventTypeRepo.Update(ctx, eventType); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrExists) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to update event type: %w", err))
	}
	return domain.Done()
}

func (s *eventTypeService) Delete(ctx context.Context, id int) domain.Empty {
	if _, err := s.eventTypeRepo.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get event type: %w", err))
	}
	if _, err := s.eventTypeRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to delete event type: %w", err))
	}
	return domain.Done()
}
