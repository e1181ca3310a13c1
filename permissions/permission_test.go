package permissions_test

import (
	"net/http"
	"testing"

	"hotel/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	permission := data.FindPermissions("/v1/admin/bookings/{id}/status", http.MethodPatch)
	assert.Equal(t, []string{"admin"}, permission.Permissions)
}

func TestFindPermissions(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/v1/admin/rooms/","method":"GET","permissions":["admin"]},
		{"path":"/v1/admin/contact","method":"GET","permissions":["admin"],"skip":true}
	]}`))
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		method   string
		wantPath string
	}{
		{name: "trailing slash in table", path: "/v1/admin/rooms", method: http.MethodGet, wantPath: "/v1/admin/rooms/"},
		{name: "exact", path: "/v1/admin/contact", method: http.MethodGet, wantPath: "/v1/admin/contact"},
		{name: "method mismatch", path: "/v1/admin/rooms/", method: http.MethodPost},
		{name: "unknown route", path: "/v1/admin/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPath, data.FindPermissions(tt.path, tt.method).Path)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestParse_RejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown method", raw: `{"endpoints":[{"path":"/v1/admin/rooms","method":"FETCH","permissions":["admin"]}]}`},
		{name: "no roles", raw: `{"endpoints":[{"path":"/v1/admin/rooms","method":"GET"}]}`},
		{name: "duplicate after slash trim", raw: `{"endpoints":[
			{"path":"/v1/admin/rooms","method":"GET","permissions":["admin"]},
			{"path":"/v1/admin/rooms/","method":"get","permissions":["admin"]}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := permissions.Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestFindPermissions_UnindexedTable(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/admin/staff/", Method: "get", Permissions: []string{"admin"}},
		},
	}

	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/admin/staff", http.MethodGet).Permissions)
}
