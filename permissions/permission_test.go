package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"dronline/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name        string
		path        string
		method      string
		skip        bool
		permissions []string
	}{
		{
			name:        "contact submission is open to guests",
			path:        "/v1/contact",
			method:      http.MethodPost,
			skip:        true,
			permissions: []string{},
		},
		{
			name:        "contact detail only requires authentication",
			path:        "/v1/contact/{id}",
			method:      http.MethodGet,
			skip:        false,
			permissions: []string{},
		},
		{
			name:        "moderator booking is admin only",
			path:        "/v1/contact/{id}/book-moderator",
			method:      http.MethodPost,
			skip:        false,
			permissions: []string{"admin"},
		},
		{
			name:        "study creation is gated to doctors and admins",
			path:        "/v1/studies",
			method:      http.MethodPost,
			skip:        false,
			permissions: []string{"doctor", "admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.path, perm.Path)
			assert.Equal(t, tt.skip, perm.Skip)
			assert.Equal(t, tt.permissions, perm.Permissions)
		})
	}
}

func TestFindPermissions_UnknownRoute(t *testing.T) {
	data := permissions.Get()

	perm := data.FindPermissions("/v1/nonexistent", http.MethodGet)

	assert.Empty(t, perm.Path)
}
