package domain

import "context"

// Template is a purchasable landing page design. Names are globally unique;
// FilePath and PreviewPath point at assets on the server.
// swagger:model Template
type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	FilePath    string `json:"file_path"`
	PreviewPath string `json:"preview_path"`
	EventTypeID int    `json:"event_type_id"`
}

// EntityID implements Entity.
func (t *Template) EntityID() int { return t.ID }

// TemplateDetails is a template together with its event category.
// swagger:model TemplateDetails
type TemplateDetails struct {
	Template  *Template  `json:"template"`
	EventType *EventType `json:"event_type"`
}

// TemplatePage is one page of the template catalog.
type TemplatePage struct {
	Templates []*Template `json:"templates"`
	Total     int         `json:"total"`
}

// TemplateInput holds the fields needed to add a template.
type TemplateInput struct {
	Name        string
	Price       int
	FilePath    string
	PreviewPath string
	EventTypeID int
}

// TemplateUpdate is a partial template update. Nil means "leave unchanged".
type TemplateUpdate struct {
	ID          int
	Name        *string
	Price       *int
	FilePath    *string
	PreviewPath *string
	EventTypeID *int
}

// TemplateRepository extends the generic contract with the natural-key finder
// and paginated catalog listing.
type TemplateRepository interface {
	Repository[*Template]
	GetByName(ctx context.Context, name string) (*Template, error)
	List(ctx context.Context, p PaginationParams) ([]*Template, int, error)
}

// TemplateService defines template catalog operations.
type TemplateService interface {
	List(ctx context.Context, p PaginationParams) Result[*TemplatePage]
	Details(ctx context.Context, id int) Result[*TemplateDetails]
	Add(ctx context.Context, input TemplateInput) Result[*Template]
	Update(ctx context.Context, input TemplateUpdate) Empty
	Delete(ctx context.Context, id int) Empty
}
