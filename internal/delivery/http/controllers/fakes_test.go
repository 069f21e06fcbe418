package controllers

import (
	"context"

	"inholiday/internal/domain"
)

// Canned-result service fakes for controller tests.

type fakeUserService struct {
	registerResult domain.Result[*domain.AuthPayload]
	loginResult    domain.Result[*domain.AuthPayload]
	getResult      domain.Result[*domain.User]
	listResult     domain.Result[*domain.UserPage]
	updateResult   domain.Empty
	deleteResult   domain.Empty

	lastRegister domain.RegisterInput
	lastAsAdmin  bool
	lastUpdate   domain.UserUpdate
	lastDeleteID int
}

func (f *fakeUserService) Register(_ context.Context, input domain.RegisterInput, asAdmin bool) domain.Result[*domain.AuthPayload] {
	f.lastRegister = input
	f.lastAsAdmin = asAdmin
	return f.registerResult
}

func (f *fakeUserService) Login(_ context.Context, email, password string) domain.Result[*domain.AuthPayload] {
	return f.loginResult
}

func (f *fakeUserService) GetByID(_ context.Context, id int) domain.Result[*domain.User] {
	return f.getResult
}

func (f *fakeUserService) GetByEmail(_ context.Context, email string) domain.Result[*domain.User] {
	return f.getResult
}

func (f *fakeUserService) List(_ context.Context, filter domain.UserFilter, p domain.PaginationParams) domain.Result[*domain.UserPage] {
	return f.listResult
}

func (f *fakeUserService) Update(_ context.Context, input domain.UserUpdate) domain.Empty {
	f.lastUpdate = input
	return f.updateResult
}

func (f *fakeUserService) Delete(_ context.Context, id int) domain.Empty {
	f.lastDeleteID = id
	return f.deleteResult
}

type fakeInvitationService struct {
	orderResult   domain.Empty
	detailsResult domain.Result[*domain.InvitationDetails]
	listResult    domain.Result[[]*domain.InvitationSummary]
	updateResult  domain.Empty
	deleteResult  domain.Empty

	lastOrder    domain.InvitationOrder
	lastClientID int
	lastUpdate   domain.InvitationUpdate
}

func (f *fakeInvitationService) Order(_ context.Context, input domain.InvitationOrder, clientID int) domain.Empty {
	f.lastOrder = input
	f.lastClientID = clientID
	return f.orderResult
}

func (f *fakeInvitationService) Details(_ context.Context, id int) domain.Result[*domain.InvitationDetails] {
	return f.detailsResult
}

func (f *fakeInvitationService) ListByClient(_ context.Context, clientID int) domain.Result[[]*domain.InvitationSummary] {
	f.lastClientID = clientID
	return f.listResult
}

func (f *fakeInvitationService) Update(_ context.Context, input domain.InvitationUpdate) domain.Empty {
	f.lastUpdate = input
	return f.updateResult
}

func (f *fakeInvitationService) Delete(_ context.Context, id int) domain.Empty {
	return f.deleteResult
}

type fakeTemplateService struct {
	listResult    domain.Result[*domain.TemplatePage]
	detailsResult domain.Result[*domain.TemplateDetails]
	addResult     domain.Result[*domain.Template]
	updateResult  domain.Empty
	deleteResult  domain.Empty

	lastAdd domain.TemplateInput
}

func (f *fakeTemplateService) List(_ context.Context, p domain.PaginationParams) domain.Result[*domain.TemplatePage] {
	return f.listResult
}

func (f *fakeTemplateService) Details(_ context.Context, id int) domain.Result[*domain.TemplateDetails] {
	return f.detailsResult
}

func (f *fakeTemplateService) Add(_ context.Context, input domain.TemplateInput) domain.Result[*domain.Template] {
	f.lastAdd = input
	return f.addResult
}

func (f *fakeTemplateService) Update(_ context.Context, input domain.TemplateUpdate) domain.Empty {
	return f.updateResult
}

func (f *fakeTemplateService) Delete(_ context.Context, id int) domain.Empty {
	return f.deleteResult
}

type fakeGuestService struct {
	takeResult   domain.Empty
	deleteResult domain.Empty

	lastTake domain.GuestResponseInput
}

func (f *fakeGuestService) TakeInvitation(_ context.Context, input domain.GuestResponseInput) domain.Empty {
	f.lastTake = input
	return f.takeResult
}

func (f *fakeGuestService) Delete(_ context.Context, id int) domain.Empty {
	return f.deleteResult
}
