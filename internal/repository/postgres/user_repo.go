package postgres

import (
	"context"
	"database/sql"

	"inholiday/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

const userColumns = "id, name, email, password_hash, phone_number, other_contact, is_admin"

func scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.OtherContact, &u.IsAdmin)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Get(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "user with id %d", id)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, notFoundIfNoRows(err, "user with email %q", email)
	}
	return u, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter, p domain.PaginationParams) ([]*domain.User, int, error) {
	where := ""
	switch filter {
	case domain.UserFilterClients:
		where = "WHERE NOT is_admin"
	case domain.UserFilterAdmins:
		where = "WHERE is_admin"
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users `+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + userColumns + `
		FROM users ` + where + `
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	users, err := collectUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Add(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, phone_number, other_contact, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.PhoneNumber, u.OtherContact, u.IsAdmin).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Existsf("user with email %q", u.Email)
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, password_hash = $2, phone_number = $3, other_contact = $4, is_admin = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query, u.Name, u.PasswordHash, u.PhoneNumber, u.OtherContact, u.IsAdmin, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Existsf("user with email %q", u.Email)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundf("user with id %d", u.ID)
	}
	return nil
}

func (r *userRepository) Remove(ctx context.Context, id int) (*domain.User, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING ` + userColumns + `
	`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "user with id %d", id)
	}
	return u, nil
}

func collectUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := []*domain.User{}
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.OtherContact, &u.IsAdmin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
