package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inholiday/internal/domain"
)

type templateService struct {
	templateRepo  domain.TemplateRepository
	eventTypeRepo domain.EventTypeRepository
}

// NewTemplateService creates a TemplateService over the template and event
// type repositories.
func NewTemplateService(templateRepo domain.TemplateRepository, eventTypeRepo domain.EventTypeRepository) domain.TemplateService {
	return &templateService{templateRepo: templateRepo, eventTypeRepo: eventTypeRepo}
}

func (s *templateService) List(ctx context.Context, p domain.PaginationParams) domain.Result[*domain.TemplatePage] {
	templates, total, err := s.templateRepo.List(ctx, p)
	if err != nil {
		return domain.Err[*domain.TemplatePage](fmt.Errorf("failed to list templates: %w", err))
	}
	return domain.Ok(&domain.TemplatePage{Templates: templates, Total: total})
}

func (s *templateService) Details(ctx context.Context, id int) domain.Result[*domain.TemplateDetails] {
	tmpl, err := s.templateRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Err[*domain.TemplateDetails](err)
		}
		return domain.Err[*domain.TemplateDetails](fmt.Errorf("failed to get template: %w", err))
	}
	eventType, err := s.eventTypeRepo.Get(ctx, tmpl.EventTypeID)
	if err != nil {
		return domain.Err[*domain.TemplateDetails](fmt.Errorf("failed to get event type: %w", err))
	}
	return domain.Ok(&domain.TemplateDetails{Template: tmpl, EventType: eventType})
}

func (s *templateService) Add(ctx context.Context, input domain.TemplateInput) domain.Result[*domain.Template] {
	name := strings.TrimSpace(input.Name)
	if _, err := s.templateRepo.GetByName(ctx, name); err == nil {
		return domain.Err[*domain.Template](domain.Existsf("template with name %q already exists", name))
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Err[*domain.Template](fmt.Errorf("failed to check template name: %w", err))
	}

	if _, err := s.eventTypeRepo.Get(ctx, input.EventTypeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Err[*domain.Template](err)
		}
		return domain.Err[*domain.Template](fmt.Errorf("failed to get event type: %w", err))
	}

	tmpl := &domain.Template{
		Name:        name,
		Price:       input.Price,
		FilePath:    input.FilePath,
		PreviewPath: input.PreviewPath,
		EventTypeID: input.EventTypeID,
	}
	created, err := s.templateRepo.Add(ctx, tmpl)
	if err != nil {
		if errors.Is(err, domain.ErrExists) {
			return domain.Err[*domain.Template](err)
		}
		return domain.Err[*domain.Template](fmt.Errorf("failed to create template: %w", err))
	}
	return domain.Ok(created)
}

func (s *templateService) Update(ctx context.Context, input domain.TemplateUpdate) domain.Empty {
	old, err := s.templateRepo.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get template: %w", err))
	}

	updated := &domain.Template{
		ID:          old.ID,
		Name:        old.Name,
		Price:       old.Price,
		FilePath:    old.FilePath,
		PreviewPath: old.PreviewPath,
		EventTypeID: old.EventTypeID,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != old.Name {
			if _, err := s.templateRepo.GetByName(ctx, name); err == nil {
				return domain.Fail(domain.Existsf("template with name %q already exists", name))
			} else if !errors.Is(err, domain.ErrNotFound) {
				return domain.Fail(fmt.Errorf("failed to check template name: %w", err))
			}
		}
		updated.Name = name
	}
	if input.Price != nil {
		updated.Price = *input.Price
	}
	if input.FilePath != nil {
		updated.FilePath = *input.FilePath
	}
	if input.PreviewPath != nil {
		updated.PreviewPath = *input.PreviewPath
	}
	if input.EventTypeID != nil {
		if _, err := s.eventTypeRepo.Get(ctx, *input.EventTypeID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Fail(err)
			}
			return domain.Fail(fmt.Errorf("failed to get event type: %w", err))
		}
		updated.EventTypeID = *input.EventTypeID
	}

	if err := s.templateRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrExists) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to update template: %w", err))
	}
	return domain.Done()
}

func (s *templateService) Delete(ctx context.Context, id int) domain.Empty {
	if _, err := s.templateRepo.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to get template: %w", err))
	}
	if _, err := s.templateRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail(err)
		}
		return domain.Fail(fmt.Errorf("failed to delete template: %w", err))
	}
	return domain.Done()
}
