package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"inholiday/internal/domain"
)

// In-memory repository fakes satisfying the same contracts as the postgres
// implementations, including their error taxonomy.

type fakeUserRepo struct {
	byID   map[int]*domain.User
	nextID int
	err    error // if set, every call returns this error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Get(ctx context.Context, id int) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, domain.NotFoundf("user with id %d", id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, domain.NotFoundf("user with email %q", email)
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(), nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter domain.UserFilter, p domain.PaginationParams) ([]*domain.User, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var all []*domain.User
	for _, u := range f.sorted() {
		switch filter {
		case domain.UserFilterClients:
			if u.IsAdmin {
				continue
			}
		case domain.UserFilterAdmins:
			if !u.IsAdmin {
				continue
			}
		}
		all = append(all, u)
	}
	total := len(all)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (f *fakeUserRepo) Add(ctx context.Context, u *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, domain.Existsf("user with email %q", u.Email)
		}
	}
	u.ID = f.nextID
	f.nextID++
	stored := *u
	f.byID[u.ID] = &stored
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[u.ID]; !ok {
		return domain.NotFoundf("user with id %d", u.ID)
	}
	stored := *u
	f.byID[u.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Remove(ctx context.Context, id int) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundf("user with id %d", id)
	}
	delete(f.byID, id)
	return u, nil
}

func (f *fakeUserRepo) sorted() []*domain.User {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeInvitationRepo struct {
	byID   map[int]*domain.Invitation
	nextID int
	err    error
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{byID: make(map[int]*domain.Invitation), nextID: 1}
}

func (f *fakeInvitationRepo) Get(ctx context.Context, id int) (*domain.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if inv, ok := f.byID[id]; ok {
		copy := *inv
		return &copy, nil
	}
	return nil, domain.NotFoundf("invitation with id %d", id)
}

func (f *fakeInvitationRepo) GetAll(ctx context.Context) ([]*domain.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Invitation, 0, len(f.byID))
	for _, inv := range f.byID {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeInvitationRepo) ListByClientID(ctx context.Context, clientID int) ([]*domain.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	all, _ := f.GetAll(ctx)
	out := []*domain.Invitation{}
	for _, inv := range all {
		if inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvitationRepo) Add(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if inv.Link != nil {
		for _, existing := range f.byID {
			if existing.Link != nil && *existing.Link == *inv.Link {
				return nil, domain.Existsf("invitation with this link")
			}
		}
	}
	inv.ID = f.nextID
	f.nextID++
	stored := *inv
	f.byID[inv.ID] = &stored
	return inv, nil
}

func (f *fakeInvitationRepo) Update(ctx context.Context, inv *domain.Invitation) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[inv.ID]; !ok {
		return domain.NotFoundf("invitation with id %d", inv.ID)
	}
	stored := *inv
	f.byID[inv.ID] = &stored
	return nil
}

func (f *fakeInvitationRepo) Remove(ctx context.Context, id int) (*domain.Invitation, error) {
	if f.err != nil {
		return nil, f.err
	}
	inv, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundf("invitation with id %d", id)
	}
	delete(f.byID, id)
	return inv, nil
}

type fakeTemplateRepo struct {
	byID   map[int]*domain.Template
	nextID int
	err    error
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{byID: make(map[int]*domain.Template), nextID: 1}
}

func (f *fakeTemplateRepo) Get(ctx context.Context, id int) (*domain.Template, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.byID[id]; ok {
		copy := *t
		return &copy, nil
	}
	return nil, domain.NotFoundf("template with id %d", id)
}

func (f *fakeTemplateRepo) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.byID {
		if t.Name == name {
			copy := *t
			return &copy, nil
		}
	}
	return nil, domain.NotFoundf("template with name %q", name)
}

func (f *fakeTemplateRepo) GetAll(ctx context.Context) ([]*domain.Template, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Template, 0, len(f.byID))
	for _, t := range f.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTemplateRepo) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Template, int, error) {
	all, err := f.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (f *fakeTemplateRepo) Add(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Name == t.Name {
			return nil, domain.Existsf("template with name %q", t.Name)
		}
	}
	t.ID = f.nextID
	f.nextID++
	stored := *t
	f.byID[t.ID] = &stored
	return t, nil
}

func (f *fakeTemplateRepo) Update(ctx context.Context, t *domain.Template) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[t.ID]; !ok {
		return domain.NotFoundf("template with id %d", t.ID)
	}
	stored := *t
	f.byID[t.ID] = &stored
	return nil
}

func (f *fakeTemplateRepo) Remove(ctx context.Context, id int) (*domain.Template, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundf("template with id %d", id)
	}
	delete(f.byID, id)
	return t, nil
}

type fakeEventTypeRepo struct {
	byID   map[int]*domain.EventType
	nextID int
	err    error
}

func newFakeEventTypeRepo() *fakeEventTypeRepo {
	return &fakeEventTypeRepo{byID: make(map[int]*domain.EventType), nextID: 1}
}

func (f *fakeEventTypeRepo) Get(ctx context.Context, id int) (*domain.EventType, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.byID[id]; ok {
		copy := *t
		return &copy, nil
	}
	return nil, domain.NotFoundf("event type with id %d", id)
}

func (f *fakeEventTypeRepo) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.byID {
		if t.Name == name {
			copy := *t
			return &copy, nil
		}
	}
	return nil, domain.NotFoundf("event type with name %q", name)
}

func (f *fakeEventTypeRepo) GetAll(ctx context.Context) ([]*domain.EventType, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.EventType, 0, len(f.byID))
	for _, t := range f.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeEventTypeRepo) Add(ctx context.Context, t *domain.EventType) (*domain.EventType, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.byID {
		if existing.Name == t.Name {
			return nil, domain.Existsf("event type with name %q", t.Name)
		}
	}
	t.ID = f.nextID
	f.nextID++
	stored := *t
	f.byID[t.ID] = &stored
	return t, nil
}

func (f *fakeEventTypeRepo) Update(ctx context.Context, t *domain.EventType) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[t.ID]; !ok {
		return domain.NotFoundf("event type with id %d", t.ID)
	}
	stored := *t
	f.byID[t.ID] = &stored
	return nil
}

func (f *fakeEventTypeRepo) Remove(ctx context.Context, id int) (*domain.EventType, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundf("event type with id %d", id)
	}
	delete(f.byID, id)
	return t, nil
}

type fakeGuestRepo struct {
	byID   map[int]*domain.Guest
	nextID int
	err    error
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{byID: make(map[int]*domain.Guest), nextID: 1}
}

func (f *fakeGuestRepo) Get(ctx context.Context, id int) (*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	if g, ok := f.byID[id]; ok {
		copy := *g
		return &copy, nil
	}
	return nil, domain.NotFoundf("guest with id %d", id)
}

func (f *fakeGuestRepo) GetAll(ctx context.Context) ([]*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Guest, 0, len(f.byID))
	for _, g := range f.byID {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeGuestRepo) ListByInvitationID(ctx context.Context, invitationID int) ([]*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	all, _ := f.GetAll(ctx)
	out := []*domain.Guest{}
	for _, g := range all {
		if g.InvitationID == invitationID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) Add(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Mirrors the guests_invitation_phone_key constraint.
	for _, existing := range f.byID {
		if existing.InvitationID == g.InvitationID && existing.PhoneNumber == g.PhoneNumber {
			return nil, domain.Existsf("guest with phone %q already accepted invitation %d", g.PhoneNumber, g.InvitationID)
		}
	}
	g.ID = f.nextID
	f.nextID++
	stored := *g
	f.byID[g.ID] = &stored
	return g, nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, g *domain.Guest) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[g.ID]; !ok {
		return domain.NotFoundf("guest with id %d", g.ID)
	}
	stored := *g
	f.byID[g.ID] = &stored
	return nil
}

func (f *fakeGuestRepo) Remove(ctx context.Context, id int) (*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.byID[id]
	if !ok {
		return nil, domain.NotFoundf("guest with id %d", id)
	}
	delete(f.byID, id)
	return g, nil
}

// fakeHasher prefixes instead of hashing so tests can assert stored values.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// fakeIssuer encodes the identity into the token for assertions.
type fakeIssuer struct{}

func (fakeIssuer) Issue(userID int, email string, role domain.Role) (string, error) {
	return fmt.Sprintf("token|%d|%s|%s", userID, email, role), nil
}

func (fakeIssuer) IssueDevelopment(userID int, email string, role domain.Role) (string, error) {
	return fmt.Sprintf("devtoken|%d|%s|%s", userID, email, role), nil
}

// tokenEmail extracts the email a fakeIssuer embedded in a token.
func tokenEmail(token string) string {
	parts := strings.Split(token, "|")
	if len(parts) != 4 {
		return ""
	}
	return parts[2]
}

// fakeEmailService records sent notifications.
type fakeEmailService struct {
	sent []*domain.GuestResponseEmailData
	err  error
}

func (f *fakeEmailService) SendGuestResponse(ctx context.Context, data *domain.GuestResponseEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
