package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inholiday/internal/delivery/http/helpers"
	"inholiday/internal/delivery/http/middleware"
	"inholiday/internal/domain"
)

func withClaims(req *http.Request, claims *domain.TokenClaims) *http.Request {
	return req.WithContext(middleware.SetClaims(req.Context(), claims))
}

func TestInvitationController_Order(t *testing.T) {
	claims := &domain.TokenClaims{UserID: 42, Email: "alice@b.c", Role: domain.RoleUser}

	t.Run("success returns 201 and uses claims as client id", func(t *testing.T) {
		svc := &fakeInvitationService{orderResult: domain.Done()}
		c := NewInvitationController(testLogger(), svc)

		body := `{"name":"Our Wedding","start_date":"2026-09-01T12:00:00Z","finish_date":"2026-09-01T23:00:00Z","template_id":3}`
		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/invitation", strings.NewReader(body)), claims)
		rr := httptest.NewRecorder()

		c.Order(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, 42, svc.lastClientID)
		assert.Equal(t, "Our Wedding", svc.lastOrder.Name)
		assert.Equal(t, 3, svc.lastOrder.TemplateID)
	})

	t.Run("missing claims returns 401", func(t *testing.T) {
		svc := &fakeInvitationService{}
		c := NewInvitationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/api/invitation", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		c.Order(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("finish before start returns 400", func(t *testing.T) {
		svc := &fakeInvitationService{}
		c := NewInvitationController(testLogger(), svc)

		body := `{"name":"X","start_date":"2026-09-02T12:00:00Z","finish_date":"2026-09-01T12:00:00Z","template_id":3}`
		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/invitation", strings.NewReader(body)), claims)
		rr := httptest.NewRecorder()

		c.Order(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown template returns 400 not_found", func(t *testing.T) {
		svc := &fakeInvitationService{orderResult: domain.Fail(domain.NotFoundf("template with id 999"))}
		c := NewInvitationController(testLogger(), svc)

		body := `{"name":"X","start_date":"2026-09-01T12:00:00Z","finish_date":"2026-09-01T23:00:00Z","template_id":999}`
		req := withClaims(httptest.NewRequest(http.MethodPost, "/api/invitation", strings.NewReader(body)), claims)
		rr := httptest.NewRecorder()

		c.Order(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestInvitationController_Update(t *testing.T) {
	t.Run("valid status is parsed and forwarded", func(t *testing.T) {
		svc := &fakeInvitationService{updateResult: domain.Done()}
		c := NewInvitationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPut, "/api/invitation/7", strings.NewReader(`{"status":"ONLINE"}`))
		req.SetPathValue("id", "7")
		rr := httptest.NewRecorder()

		c.Update(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 7, svc.lastUpdate.ID)
		require.NotNil(t, svc.lastUpdate.Status)
		assert.Equal(t, domain.OrderOnline, *svc.lastUpdate.Status)
		assert.Nil(t, svc.lastUpdate.Name)
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		svc := &fakeInvitationService{}
		c := NewInvitationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPut, "/api/invitation/7", strings.NewReader(`{"status":"SHIPPED"}`))
		req.SetPathValue("id", "7")
		rr := httptest.NewRecorder()

		c.Update(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		svc := &fakeInvitationService{}
		c := NewInvitationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPut, "/api/invitation/abc", strings.NewReader(`{}`))
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()

		c.Update(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown invitation returns 400 not_found", func(t *testing.T) {
		svc := &fakeInvitationService{updateResult: domain.Fail(domain.NotFoundf("invitation with id 999"))}
		c := NewInvitationController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPut, "/api/invitation/999", strings.NewReader(`{"name":"Renamed"}`))
		req.SetPathValue("id", "999")
		rr := httptest.NewRecorder()

		c.Update(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestInvitationController_ListMine(t *testing.T) {
	claims := &domain.TokenClaims{UserID: 42, Email: "alice@b.c", Role: domain.RoleUser}

	svc := &fakeInvitationService{
		listResult: domain.Ok([]*domain.InvitationSummary{{ID: 1, Name: "Our Wedding", Status: domain.OrderAccepted}}),
	}
	c := NewInvitationController(testLogger(), svc)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/invitation", nil), claims)
	rr := httptest.NewRecorder()

	c.ListMine(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 42, svc.lastClientID)
	envelope := decodeEnvelope(t, rr)
	require.Nil(t, envelope.Error)
	data, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}
