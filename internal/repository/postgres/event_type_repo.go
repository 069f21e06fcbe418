package postgres

import (
	"context"
	"database/sql"

	"inholiday/internal/domain"
)

type eventTypeRepository struct {
	DB *sql.DB
}

func NewEventTypeRepository(db *sql.DB) domain.EventTypeRepository {
	return &eventTypeRepository{DB: db}
}

func (r *eventTypeRepository) Get(ctx context.Context, id int) (*domain.EventType, error) {
	query := `
		SELECT id, name
		FROM types_of_event
		WHERE id = $1
	`
	t := &domain.EventType{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, notFoundIfNoRows(err, "event type with id %d", id)
	}
	return t, nil
}

func (r *eventTypeRepository) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	query := `
		SELECT id, name
		FROM types_of_event
		WHERE name = $1
	`
	t := &domain.EventType{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, notFoundIfNoRows(err, "event type with name %q", name)
	}
	return t, nil
}

func (r *eventTypeRepository) GetAll(ctx context.Context) ([]*domain.EventType, error) {
	query := `
		SELECT id, name
		FROM types_of_event
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []*domain.EventType{}
	for rows.Next() {
		t := &domain.EventType{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *eventTypeRepository) Add(ctx context.Context, t *domain.EventType) (*domain.EventType, error) {
	query := `
		INSERT INTO types_of_event (name)
		VALUES ($1)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, t.Name).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Existsf("event type with name %q", t.Name)
		}
		return nil, err
	}
	return t, nil
}

func (r *eventTypeRepository) Update(ctx context.Context, t *domain.EventType) error {
	query := `
		UPDATE types_of_event
		SET name = $1
		WHERE id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, t.Name, t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Existsf("event type with name %q", t.Name)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundf("event type with id %d", t.ID)
	}
	return nil
}

func (r *eventTypeRepository) Remove(ctx context.Context, id int) (*domain.EventType, error) {
	query := `
		DELETE FROM types_of_event
		WHERE id = $1
		RETURNING id, name
	`
	t := &domain.EventType{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, notFoundIfNoRows(err, "event type with id %d", id)
	}
	return t, nil
}
