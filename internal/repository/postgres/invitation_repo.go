package postgres

import (
	"context"
	"database/sql"

	"inholiday/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

const invitationColumns = "id, name, link, status, start_date, finish_date, id_client, id_template"

func scanInvitation(row *sql.Row) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var status string
	err := row.Scan(&inv.ID, &inv.Name, &inv.Link, &status, &inv.StartDate, &inv.FinishDate, &inv.ClientID, &inv.TemplateID)
	if err != nil {
		return nil, err
	}
	inv.Status, err = domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) Get(ctx context.Context, id int) (*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM landing_invitations
		WHERE id = $1
	`
	inv, err := scanInvitation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "invitation with id %d", id)
	}
	return inv, nil
}

func (r *invitationRepository) GetAll(ctx context.Context) ([]*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM landing_invitations
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvitations(rows)
}

func (r *invitationRepository) ListByClientID(ctx context.Context, clientID int) ([]*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM landing_invitations
		WHERE id_client = $1
		ORDER BY start_date, id
	`
	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvitations(rows)
}

func (r *invitationRepository) Add(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	query := `
		INSERT INTO landing_invitations (name, link, status, start_date, finish_date, id_client, id_template)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.Name, inv.Link, string(inv.Status), inv.StartDate, inv.FinishDate, inv.ClientID, inv.TemplateID).
		Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Existsf("invitation with this link")
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	query := `
		UPDATE landing_invitations
		SET name = $1, link = $2, status = $3, start_date = $4, finish_date = $5, id_template = $6
		WHERE id = $7
	`
	res, err := r.DB.ExecContext(ctx, query,
		inv.Name, inv.Link, string(inv.Status), inv.StartDate, inv.FinishDate, inv.TemplateID, inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Existsf("invitation with this link")
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundf("invitation with id %d", inv.ID)
	}
	return nil
}

func (r *invitationRepository) Remove(ctx context.Context, id int) (*domain.Invitation, error) {
	query := `
		DELETE FROM landing_invitations
		WHERE id = $1
		RETURNING ` + invitationColumns + `
	`
	inv, err := scanInvitation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "invitation with id %d", id)
	}
	return inv, nil
}

func collectInvitations(rows *sql.Rows) ([]*domain.Invitation, error) {
	invs := []*domain.Invitation{}
	for rows.Next() {
		inv := &domain.Invitation{}
		var status string
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Link, &status, &inv.StartDate, &inv.FinishDate, &inv.ClientID, &inv.TemplateID); err != nil {
			return nil, err
		}
		parsed, err := domain.ParseOrderStatus(status)
		if err != nil {
			return nil, err
		}
		inv.Status = parsed
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invs, nil
}
