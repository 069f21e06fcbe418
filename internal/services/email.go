package services

import (
	"context"
	"fmt"
	"log"

	"inholiday/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendGuestResponse notifies an invitation owner that a guest accepted, using
// the "guest_response" template.
func (s *emailService) SendGuestResponse(ctx context.Context, data *domain.GuestResponseEmailData) error {
	if data == nil {
		return fmt.Errorf("guest response data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("guest_response", data)
	if err != nil {
		return fmt.Errorf("failed to render guest_response template: %w", err)
	}
	if err := s.mailer.Send(data.OwnerEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send guest response email: %w", err)
	}
	log.Printf("[EMAIL] Guest response notification sent to %s", data.OwnerEmail)
	return nil
}
