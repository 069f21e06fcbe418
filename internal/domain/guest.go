package domain

import (
	"context"
	"time"
)

// Guest is an accepted invitation response. The phone number is unique per
// invitation, enforced by a database constraint rather than an application
// pre-check.
// swagger:model Guest
type Guest struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phone_number"`
	InvitationID int       `json:"invitation_id"`
	RespondedAt  time.Time `json:"responded_at"`
}

// EntityID implements Entity.
func (g *Guest) EntityID() int { return g.ID }

// GuestResponseInput holds the fields a guest submits when accepting an
// invitation.
type GuestResponseInput struct {
	Name         string
	PhoneNumber  string
	InvitationID int
}

// GuestRepository extends the generic contract with the invitation-scoped
// listing used by invitation details.
type GuestRepository interface {
	Repository[*Guest]
	ListByInvitationID(ctx context.Context, invitationID int) ([]*Guest, error)
}

// GuestService defines guest response operations.
type GuestService interface {
	TakeInvitation(ctx context.Context, input GuestResponseInput) Empty
	Delete(ctx context.Context, id int) Empty
}
