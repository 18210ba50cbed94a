package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanrate/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{"login is public", "/v1/auth/login", "POST", true, nil},
		{"refresh is public", "/v1/auth/refresh-token", "POST", true, nil},
		{"me allows employees", "/v1/auth/me", "GET", false, []string{"admin", "employee"}},
		{"default is admin", "/v1/employees/{id}", "DELETE", false, []string{"admin"}},
		{"sub router index", "/v1/ratings/", "GET", false, []string{"admin"}},
		{"method matters", "/v1/auth/login", "GET", false, []string{"admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)
			assert.Equal(t, tt.skip, permission.Skip)

			if !tt.skip {
				assert.Equal(t, tt.roles, permission.Permissions)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	assert.Nil(t, permissions.Parse([]byte("{")))
}
