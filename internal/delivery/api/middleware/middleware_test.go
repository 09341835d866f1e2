package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agroalert/internal/domain/constants"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/service"
	mockService "agroalert/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockService.MockTokenService) {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	auth := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	g := e.Group("/scans", auth.Authenticate, auth.RequireRole(constants.RoleOperator))
	g.POST("", func(c echo.Context) error {
		subject, _ := GetSubject(c)
		return c.String(http.StatusOK, subject)
	})

	return e, tokenSvc
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(*mockService.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
		{
			name:   "missing operator role",
			header: "Bearer viewer",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("viewer").Return(&service.Claims{Roles: []string{"viewer"}}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "FORBIDDEN",
		},
		{
			name:   "operator",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				claims := &service.Claims{Roles: []string{constants.RoleOperator}}
				claims.Subject = "scheduler"
				m.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "scheduler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc := newAuthTestEcho(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/scans", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantInBody string
		notInBody  string
	}{
		{
			name:       "client error keeps wrapped details",
			err:        domainerrors.ErrValidationFailed.WrapMessage("invalid subscription_id"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantInBody: "invalid subscription_id",
		},
		{
			name:       "server error hides details",
			err:        domainerrors.ErrGeoLookupFailed.WrapMessage("dial tcp 10.0.0.1:443"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "GEO_LOOKUP_FAILED",
			notInBody:  "10.0.0.1",
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			notInBody:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/places", nil), rec)

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			if tt.wantInBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantInBody)
			}
			if tt.notInBody != "" {
				assert.NotContains(t, rec.Body.String(), tt.notInBody)
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusNoContent)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
