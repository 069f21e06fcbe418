package postgres

import (
	"context"
	"database/sql"

	"inholiday/internal/domain"
)

type templateRepository struct {
	DB *sql.DB
}

func NewTemplateRepository(db *sql.DB) domain.TemplateRepository {
	return &templateRepository{DB: db}
}

const templateColumns = "id, name, price, file_path, preview_path, id_type_of_event"

func scanTemplate(row *sql.Row) (*domain.Template, error) {
	t := &domain.Template{}
	err := row.Scan(&t.ID, &t.Name, &t.Price, &t.FilePath, &t.PreviewPath, &t.EventTypeID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *templateRepository) Get(ctx context.Context, id int) (*domain.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM templates
		WHERE id = $1
	`
	t, err := scanTemplate(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "template with id %d", id)
	}
	return t, nil
}

func (r *templateRepository) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM templates
		WHERE name = $1
	`
	t, err := scanTemplate(r.DB.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, notFoundIfNoRows(err, "template with name %q", name)
	}
	return t, nil
}

func (r *templateRepository) GetAll(ctx context.Context) ([]*domain.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM templates
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *templateRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Template, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + templateColumns + `
		FROM templates
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	templates, err := collectTemplates(rows)
	if err != nil {
		return nil, 0, err
	}
	return templates, total, nil
}

func (r *templateRepository) Add(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	query := `
		INSERT INTO templates (name, price, file_path, preview_path, id_type_of_event)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, t.Name, t.Price, t.FilePath, t.PreviewPath, t.EventTypeID).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Existsf("template with name %q", t.Name)
		}
		return nil, err
	}
	return t, nil
}

func (r *templateRepository) Update(ctx context.Context, t *domain.Template) error {
	query := `
		UPDATE templates
		SET name = $1, price = $2, file_path = $3, preview_path = $4, id_type_of_event = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query, t.Name, t.Price, t.FilePath, t.PreviewPath, t.EventTypeID, t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Existsf("template with name %q", t.Name)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundf("template with id %d", t.ID)
	}
	return nil
}

func (r *templateRepository) Remove(ctx context.Context, id int) (*domain.Template, error) {
	query := `
		DELETE FROM templates
		WHERE id = $1
		RETURNING ` + templateColumns + `
	`
	t, err := scanTemplate(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "template with id %d", id)
	}
	return t, nil
}

func collectTemplates(rows *sql.Rows) ([]*domain.Template, error) {
	templates := []*domain.Template{}
	for rows.Next() {
		t := &domain.Template{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.FilePath, &t.PreviewPath, &t.EventTypeID); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}
