package password_test

import (
	"strings"
	"testing"

	"cleanrate/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "validPassword123", nil},
		{"special characters", "P@ssw0rd!#$%^&*()", nil},
		{"unicode", "пароль123", nil},
		{"empty password", "", password.ErrEmptyPassword},
		{"longer than 72 bytes", strings.Repeat("a", 100), password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := password.Hash("secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{"match", "secret123", validHash, nil},
		{"wrong password", "secret124", validHash, password.ErrInvalidPassword},
		{"empty password", "", validHash, password.ErrInvalidPassword},
		{"empty hash", "secret123", "", password.ErrInvalidPassword},
		{"malformed hash", "secret123", "invalid_hash", password.ErrVerifyingPassword},
		{"truncated hash", "secret123", validHash[:10], password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("samePassword")
	require.NoError(t, err)

	second, err := password.Hash("samePassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("samePassword", first))
	assert.NoError(t, password.Verify("samePassword", second))
}
