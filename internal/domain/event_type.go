package domain

import "context"

// EventType is a category label for templates (wedding, birthday, ...).
// Names are globally unique.
// swagger:model EventType
type EventType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EntityID implements Entity.
func (t *EventType) EntityID() int { return t.ID }

// EventTypeRepository extends the generic contract with the natural-key
// finder used by uniqueness checks.
type EventTypeRepository interface {
	Repository[*EventType]
	GetByName(ctx context.Context, name string) (*EventType, error)
}

// EventTypeService defines event category operations.
type EventTypeService interface {
	List(ctx context.Context) Result[[]*EventType]
	Add(ctx context.Context, name string) Empty
	Update(ctx context.Context, id int, newName string) Empty
	Delete(ctx context.Context, id int) Empty
}
