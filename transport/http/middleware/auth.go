package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"slices"
	"strings"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// trustedCallerKey marks a request authenticated by the internal API key.
type trustedCallerKey struct{}

var tokenErrorMessages = []struct {
	target  error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

// AuthRole gates the admin surface: API key, session token, then role.
type AuthRole interface {
	APIKey(http.Handler) http.Handler
	Auth(http.Handler) http.Handler
	RBAC(http.Handler) http.Handler
}

type authRole struct {
	jwt        jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	apiKey     []byte
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRole{
		jwt:        jwtService,
		otel:       otel,
		permission: permissions,
		apiKey:     []byte(cfg.App.APIKey),
	}
}

// APIKey lets internal callers through without a session. Requests without the header fall through to Auth.
func (m *authRole) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.APIKey")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if len(m.apiKey) == 0 || subtle.ConstantTimeCompare([]byte(key), m.apiKey) != 1 {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		ctx := context.WithValue(request.Context(), trustedCallerKey{}, true)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Auth resolves the session token into the user id, email and role on the context.
func (m *authRole) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.Auth")
		defer scope.End()

		pattern := routePattern(request)
		scope.SetAttributes(map[string]any{
			"http.route":  pattern,
			"http.method": request.Method,
		})

		if trusted(ctx) || m.route(pattern, request.Method).Skip {
			next.ServeHTTP(writer, request)

			return
		}

		token, err := bearerToken(request)
		if err != nil {
			scope.TraceError(err)
			toLogin(writer, err)

			return
		}

		claims, err := m.jwt.ValidateToken(ctx, token, jwt.AccessToken)
		if err != nil {
			err = failure.Unauthorized(tokenErrorMessage(err))
			scope.TraceError(err)
			toLogin(writer, err)

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("user_id", claims.UserID).Msg("session token missing user id or email")
			toLogin(writer, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = request.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the session role against the permissions table. Routes missing from the table are admin only.
func (m *authRole) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.RBAC")
		defer scope.End()

		if trusted(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.TraceError(failure.ForbiddenError)
			toLogin(writer, failure.ForbiddenError)

			return
		}

		permission := m.route(routePattern(request), request.Method)
		if m.permission.Skip || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		allowed := permission.Permissions
		if len(allowed) == 0 {
			allowed = []string{constant.RoleAdmin}
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if !slices.Contains(allowed, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": allowed,
			})
			scope.TraceError(failure.ForbiddenError)
			toLogin(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (m *authRole) route(pattern, method string) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(pattern, method)
}

// routePattern resolves the chi pattern the request will be served by, e.g. /v1/admin/rooms/{id}.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}

func trusted(ctx context.Context) bool {
	ok, _ := ctx.Value(trustedCallerKey{}).(bool)

	return ok
}

func tokenErrorMessage(err error) string {
	for _, candidate := range tokenErrorMessages {
		if errors.Is(err, candidate.target) {
			return candidate.message
		}
	}

	return "Token validation failed"
}

// bearerToken reads the Authorization header. Websocket upgrades may pass the token as a query parameter instead.
func bearerToken(request *http.Request) (string, error) {
	header := request.Header.Get(constant.RequestHeaderAuthorization)
	if header != "" {
		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			return "", failure.Unauthorized("Invalid authorization header format") //nolint:wrapcheck
		}

		return token, nil
	}

	upgrade := strings.EqualFold(request.Header.Get(constant.RequestHeaderUpgrade), "websocket")
	if token := request.URL.Query().Get(constant.RequestParamAccessToken); upgrade && token != "" {
		return token, nil
	}

	return "", failure.Unauthorized("Missing authorization header") //nolint:wrapcheck
}

// toLogin writes err and points the client at the admin login route.
func toLogin(writer http.ResponseWriter, err error) {
	writer.Header().Set(constant.ResponseHeaderLocation, constant.AdminLoginPath)
	response.WithError(writer, err)
}
