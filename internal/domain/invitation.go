package domain

import (
	"context"
	"fmt"
	"time"
)

// OrderStatus is the lifecycle label of an invitation order. The set is
// closed but transitions are not validated: an admin update may set any
// status (matching how orders were actually managed).
type OrderStatus string

const (
	OrderAccepted   OrderStatus = "ACCEPTED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderDone       OrderStatus = "DONE"
	OrderOnline     OrderStatus = "ONLINE"
	OrderCanceled   OrderStatus = "CANCELED"
)

// ParseOrderStatus maps a stored or submitted label to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderAccepted, OrderInProgress, OrderDone, OrderOnline, OrderCanceled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Invitation is an ordered invitation landing page. Link is nil until the
// page is published and unique once assigned.
// swagger:model Invitation
type Invitation struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Link       *string     `json:"link,omitempty"`
	Status     OrderStatus `json:"status"`
	StartDate  time.Time   `json:"start_date"`
	FinishDate time.Time   `json:"finish_date"`
	ClientID   int         `json:"client_id"`
	TemplateID int         `json:"template_id"`
}

// EntityID implements Entity.
func (i *Invitation) EntityID() int { return i.ID }

// InvitationSummary is the short listing form of an invitation.
// swagger:model InvitationSummary
type InvitationSummary struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	StartDate  time.Time   `json:"start_date"`
	FinishDate time.Time   `json:"finish_date"`
	Status     OrderStatus `json:"status"`
}

// Summary returns the short listing form.
func (i *Invitation) Summary() *InvitationSummary {
	return &InvitationSummary{
		ID:         i.ID,
		Name:       i.Name,
		StartDate:  i.StartDate,
		FinishDate: i.FinishDate,
		Status:     i.Status,
	}
}

// InvitationDetails is the full view of an invitation: the order itself, the
// chosen template, and the guests who accepted.
// swagger:model InvitationDetails
type InvitationDetails struct {
	Invitation *Invitation `json:"invitation"`
	Template   *Template   `json:"template"`
	Guests     []*Guest    `json:"guests"`
}

// InvitationOrder holds the fields a client submits when ordering.
type InvitationOrder struct {
	Name       string
	StartDate  time.Time
	FinishDate time.Time
	TemplateID int
}

// InvitationUpdate is a partial admin update. Nil means "leave unchanged".
// The owning client is never reassigned.
type InvitationUpdate struct {
	ID         int
	Name       *string
	Link       *string
	Status     *OrderStatus
	StartDate  *time.Time
	FinishDate *time.Time
	TemplateID *int
}

// InvitationRepository extends the generic contract with the owner-scoped
// listing used by client views.
type InvitationRepository interface {
	Repository[*Invitation]
	ListByClientID(ctx context.Context, clientID int) ([]*Invitation, error)
}

// InvitationService defines invitation order operations.
type InvitationService interface {
	Order(ctx context.Context, input InvitationOrder, clientID int) Empty
	Details(ctx context.Context, id int) Result[*InvitationDetails]
	ListByClient(ctx context.Context, clientID int) Result[[]*InvitationSummary]
	Update(ctx context.Context, input InvitationUpdate) Empty
	Delete(ctx context.Context, id int) Empty
}
