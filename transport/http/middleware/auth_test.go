package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
)

func TestAuthRole_AdminGate(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		query        string
		upgrade      bool
		setupMock    func(mock *jwtMocks.MockJWT)
		wantCode     int
		wantLocation bool
	}{
		{
			name:         "no session",
			setupMock:    func(_ *jwtMocks.MockJWT) {},
			wantCode:     http.StatusUnauthorized,
			wantLocation: true,
		},
		{
			name:   "expired session",
			header: "Bearer expired",
			setupMock: func(mock *jwtMocks.MockJWT) {
				mock.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode:     http.StatusUnauthorized,
			wantLocation: true,
		},
		{
			name:   "non admin session",
			header: "Bearer user-token",
			setupMock: func(mock *jwtMocks.MockJWT) {
				mock.EXPECT().
					ValidateToken(gomock.Any(), "user-token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u1", Email: "u@example.com", Role: constant.RoleUser}, nil)
			},
			wantCode:     http.StatusForbidden,
			wantLocation: true,
		},
		{
			name:   "admin session",
			header: "Bearer admin-token",
			setupMock: func(mock *jwtMocks.MockJWT) {
				mock.EXPECT().
					ValidateToken(gomock.Any(), "admin-token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "a1", Email: "a@example.com", Role: constant.RoleAdmin}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "websocket upgrade with query token",
			query:   "?access_token=admin-token",
			upgrade: true,
			setupMock: func(mock *jwtMocks.MockJWT) {
				mock.EXPECT().
					ValidateToken(gomock.Any(), "admin-token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "a1", Email: "a@example.com", Role: constant.RoleAdmin}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:         "query token ignored without upgrade",
			query:        "?access_token=admin-token",
			setupMock:    func(_ *jwtMocks.MockJWT) {},
			wantCode:     http.StatusUnauthorized,
			wantLocation: true,
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setupMock: func(mock *jwtMocks.MockJWT) {
				mock.EXPECT().ValidateToken(gomock.Any(), "broken", jwt.AccessToken).Return(nil, errors.New("bad signature"))
			},
			wantCode:     http.StatusUnauthorized,
			wantLocation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtMock := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(jwtMock)

			perms := &permissions.PermissionData{
				Endpoints: []permissions.Permission{
					{Path: "/v1/admin/dashboard", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin}},
				},
			}

			mw := middleware.NewAuthRoleMiddleware(jwtMock, mocks.NewOtel(), perms, &config.Config{})

			router := chi.NewRouter()
			router.Route("/v1/admin", func(admin chi.Router) {
				admin.Use(mw.Auth, mw.RBAC)
				admin.Get("/dashboard", func(writer http.ResponseWriter, request *http.Request) {
					userID, _ := request.Context().Value(constant.ContextKeyUserID).(string)
					assert.Equal(t, "a1", userID)
					writer.WriteHeader(http.StatusOK)
				})
			})

			request := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard"+tt.query, nil)
			if tt.header != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			if tt.upgrade {
				request.Header.Set(constant.RequestHeaderUpgrade, "websocket")
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantLocation {
				assert.Equal(t, constant.AdminLoginPath, recorder.Header().Get(constant.ResponseHeaderLocation))
			}
		})
	}
}

func TestAuthRole_APIKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		header   string
		wantCode int
	}{
		{name: "matching key skips session", key: "internal", header: "internal", wantCode: http.StatusOK},
		{name: "wrong key", key: "internal", header: "guess", wantCode: http.StatusForbidden},
		{name: "key not configured", header: "internal", wantCode: http.StatusForbidden},
		{name: "no key falls through to session", key: "internal", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			cfg := &config.Config{}
			cfg.App.APIKey = tt.key

			mw := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), mocks.NewOtel(), &permissions.PermissionData{}, cfg)

			router := chi.NewRouter()
			router.Route("/v1/admin", func(admin chi.Router) {
				admin.Use(mw.APIKey, mw.Auth, mw.RBAC)
				admin.Get("/rooms", func(writer http.ResponseWriter, _ *http.Request) {
					writer.WriteHeader(http.StatusOK)
				})
			})

			request := httptest.NewRequest(http.MethodGet, "/v1/admin/rooms", nil)
			if tt.header != "" {
				request.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestAuthRole_SkippedRoute(t *testing.T) {
	ctrl := gomock.NewController(t)

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/admin/login", Method: http.MethodPost, Skip: true},
		},
	}

	mw := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), mocks.NewOtel(), perms, &config.Config{})

	router := chi.NewRouter()
	router.Route("/v1/admin", func(admin chi.Router) {
		admin.Use(mw.Auth, mw.RBAC)
		admin.Post("/login", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/admin/login", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
