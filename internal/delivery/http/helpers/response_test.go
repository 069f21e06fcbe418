package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inholiday/internal/domain"
)

func TestWriteServiceError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "exists maps to 409 conflict",
			err:         domain.Existsf("template with name %q already exists", "Wedding A"),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrCodeConflict,
			wantMessage: `entity already exists: template with name "Wedding A" already exists`,
		},
		{
			name:        "not found maps to 400 not_found",
			err:         domain.NotFoundf("invitation with id %d", 7),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeNotFound,
			wantMessage: "entity not found: invitation with id 7",
		},
		{
			name:        "validation maps to 400 bad_request",
			err:         domain.Validationf("finish date before start date"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeBadRequest,
			wantMessage: "validation failed: finish date before start date",
		},
		{
			name:        "authentication maps to 401",
			err:         domain.Authenticationf("token subject missing"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    ErrCodeUnauthorized,
			wantMessage: "authentication failed: token subject missing",
		},
		{
			name:        "unexpected errors are sanitized 500s",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrCodeInternalError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/invitation/7", nil)
			rr := httptest.NewRecorder()

			WriteServiceError(rr, req, logger, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			assert.Equal(t, tt.wantMessage, envelope.Error.Message)
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "", DefaultPage, DefaultPageSize},
		{"explicit values", "page=3&page_size=50", 3, 50},
		{"page size clamped", "page=1&page_size=500", 1, MaxPageSize},
		{"invalid values fall back", "page=zero&page_size=-2", DefaultPage, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/template?"+tt.query, nil)
			p := ParsePagination(req)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}
