package domain

import (
	"context"
	"time"
)

// Mailer sends a rendered email. Implementations may use SES or a no-op for
// development.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// GuestResponseEmailData is the payload of the notification sent to an
// invitation owner when a guest accepts.
type GuestResponseEmailData struct {
	OwnerName      string
	OwnerEmail     string
	GuestName      string
	GuestPhone     string
	InvitationName string
	RespondedAt    time.Time
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// EmailService renders and sends domain emails.
type EmailService interface {
	SendGuestResponse(ctx context.Context, data *GuestResponseEmailData) error
}
