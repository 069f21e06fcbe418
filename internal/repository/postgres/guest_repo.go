package postgres

import (
	"context"
	"database/sql"

	"inholiday/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

const guestColumns = "id, name, phone_number, id_landing_invitation, responded_at"

func scanGuest(row *sql.Row) (*domain.Guest, error) {
	g := &domain.Guest{}
	err := row.Scan(&g.ID, &g.Name, &g.PhoneNumber, &g.InvitationID, &g.RespondedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) Get(ctx context.Context, id int) (*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE id = $1
	`
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "guest with id %d", id)
	}
	return g, nil
}

func (r *guestRepository) GetAll(ctx context.Context) ([]*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGuests(rows)
}

func (r *guestRepository) ListByInvitationID(ctx context.Context, invitationID int) ([]*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE id_landing_invitation = $1
		ORDER BY responded_at
	`
	rows, err := r.DB.QueryContext(ctx, query, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGuests(rows)
}

func (r *guestRepository) Add(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	// Uniqueness of the phone number per invitation is enforced by the
	// guests_invitation_phone_key constraint, not pre-checked here.
	query := `
		INSERT INTO guests (name, phone_number, id_landing_invitation, responded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, g.Name, g.PhoneNumber, g.InvitationID, g.RespondedAt).Scan(&g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Existsf("guest with phone %q already accepted invitation %d", g.PhoneNumber, g.InvitationID)
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `
		UPDATE guests
		SET name = $1, phone_number = $2
		WHERE id = $3
	`
	res, err := r.DB.ExecContext(ctx, query, g.Name, g.PhoneNumber, g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Existsf("guest with phone %q already accepted invitation %d", g.PhoneNumber, g.InvitationID)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundf("guest with id %d", g.ID)
	}
	return nil
}

func (r *guestRepository) Remove(ctx context.Context, id int) (*domain.Guest, error) {
	query := `
		DELETE FROM guests
		WHERE id = $1
		RETURNING ` + guestColumns + `
	`
	g, err := scanGuest(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "guest with id %d", id)
	}
	return g, nil
}

func collectGuests(rows *sql.Rows) ([]*domain.Guest, error) {
	guests := []*domain.Guest{}
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.Name, &g.PhoneNumber, &g.InvitationID, &g.RespondedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return guests, nil
}
