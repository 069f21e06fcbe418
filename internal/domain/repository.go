package domain

import "context"

// Entity is implemented by every persisted record keyed by an integer id.
type Entity interface {
	EntityID() int
}

// Repository is the generic data-access boundary between services and the
// backing store. Both the postgres implementations and the in-memory fakes
// used by service tests satisfy it.
//
// Get and Remove report a missing row as ErrNotFound. Add reports a unique
// constraint violation as ErrExists and returns the item with its assigned
// id. Update replaces by id with last-write-wins semantics and reports a
// missing row as ErrNotFound.
type Repository[T Entity] interface {
	Get(ctx context.Context, id int) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) error
	Remove(ctx context.Context, id int) (T, error)
}
