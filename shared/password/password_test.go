package password_test

import (
	"strings"
	"testing"

	"hotel/shared/password"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "seeded admin password", plain: "password"},
		{name: "unicode", plain: "kamar-suite-301-ñ"},
		{name: "exactly the bcrypt limit", plain: strings.Repeat("a", password.MaxLength)},
		{name: "empty", plain: "", wantErr: password.ErrEmpty},
		{name: "over the bcrypt limit", plain: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.plain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, tt.plain, hashed)

			cost, err := bcrypt.Cost([]byte(hashed))
			assert.NoError(t, err)
			assert.Equal(t, password.Cost, cost)
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("frontdesk123")
	assert.NoError(t, err)

	second, err := password.Hash("frontdesk123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, password.Matches("frontdesk123", first))
	assert.True(t, password.Matches("frontdesk123", second))
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("password")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		plain     string
		hash      string
		wantErr   error
		wantOther bool
	}{
		{name: "match", plain: "password", hash: hashed},
		{name: "wrong password", plain: "Password", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "password", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "not a bcrypt hash", plain: "password", hash: "plaintext", wantOther: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantOther:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, password.ErrInvalidPassword)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
