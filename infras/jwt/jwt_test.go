package jwt_test

import (
	"context"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotel-api"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60 * 24

	return cfg
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func TestService_GenerateAndValidate(t *testing.T) {
	clk := &clock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	svc := jwt.NewWithClock(newConfig(), clk.Now)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "u1", "frontdesk@hotel.test", "admin")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "hotel-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, pair.RefreshToken, jwt.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, pair.AccessToken+"x", jwt.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		cfg := newConfig()
		cfg.App.Name = "someone-else"

		_, err := jwt.NewWithClock(cfg, clk.Now).ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := &clock{now: clk.now.Add(16 * time.Minute)}

		_, err := jwt.NewWithClock(newConfig(), later.Now).ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestService_SameSecretWrongType(t *testing.T) {
	cfg := newConfig()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret

	svc := jwt.NewWithClock(cfg, time.Now)

	pair, err := svc.GenerateTokenPair(context.Background(), "u1", "a@hotel.test", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestService_RefreshTokens(t *testing.T) {
	svc := jwt.NewWithClock(newConfig(), time.Now)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "u2", "staff@hotel.test", "user")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "staff@hotel.test", claims.Email)

	_, err = svc.RefreshTokens(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestService_MissingSecret(t *testing.T) {
	cfg := newConfig()
	cfg.JWT.AccessSecret = ""

	_, err := jwt.NewWithClock(cfg, time.Now).GenerateTokenPair(context.Background(), "u1", "a@hotel.test", "user")

	assert.ErrorIs(t, err, jwt.ErrMissingSecret)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: jwt.ErrMissingHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: jwt.ErrMalformedHeader},
		{name: "scheme only", header: "Bearer ", wantErr: jwt.ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
