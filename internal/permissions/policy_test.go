package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

func ptr(v int64) *int64 { return &v }

func TestReadOnlySafe(t *testing.T) {
	for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		assert.True(t, ReadOnlySafe(m), m)
	}
	for _, m := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodPut} {
		assert.False(t, ReadOnlySafe(m), m)
	}
}

func TestPredicates(t *testing.T) {
	superuser := &models.UserDB{ID: 1, Role: models.RoleUser, IsSuperuser: true}
	staff := &models.UserDB{ID: 2, Role: models.RoleUser, IsStaff: true}
	user := &models.UserDB{ID: 3, Role: models.RoleUser}

	assert.True(t, IsAdmin(superuser))
	assert.False(t, IsAdmin(staff))
	assert.False(t, IsAdmin(nil))

	assert.True(t, IsOwnerOrModerator(staff, 99))
	assert.True(t, IsOwnerOrModerator(superuser, 99))
	assert.True(t, IsOwnerOrModerator(user, 3))
	assert.False(t, IsOwnerOrModerator(user, 99))
	assert.False(t, IsOwnerOrModerator(nil, 0))
}

func TestAuthorize(t *testing.T) {
	admin := &models.UserDB{ID: 1, Role: models.RoleAdmin}
	moderator := &models.UserDB{ID: 2, Role: models.RoleModerator}
	author := &models.UserDB{ID: 3, Role: models.RoleUser}
	other := &models.UserDB{ID: 4, Role: models.RoleUser}

	tests := []struct {
		name     string
		caller   *models.UserDB
		resource Resource
		method   string
		owner    *int64
		wantErr  error
	}{
		{"anonymous reads categories", nil, Categories, http.MethodGet, nil, nil},
		{"anonymous deletes category", nil, Categories, http.MethodDelete, nil, apperrors.ErrUnauthenticated},
		{"user deletes category", author, Categories, http.MethodDelete, nil, apperrors.ErrForbidden},
		{"admin deletes category", admin, Categories, http.MethodDelete, nil, nil},
		{"user creates title", author, Titles, http.MethodPost, nil, apperrors.ErrForbidden},
		{"moderator creates genre", moderator, Genres, http.MethodPost, nil, apperrors.ErrForbidden},
		{"admin creates title", admin, Titles, http.MethodPost, nil, nil},
		{"anonymous reads reviews", nil, Reviews, http.MethodGet, ptr(3), nil},
		{"anonymous posts review", nil, Reviews, http.MethodPost, nil, apperrors.ErrUnauthenticated},
		{"user posts review", other, Reviews, http.MethodPost, nil, nil},
		{"author patches review", author, Reviews, http.MethodPatch, ptr(3), nil},
		{"stranger patches review", other, Reviews, http.MethodPatch, ptr(3), apperrors.ErrForbidden},
		{"moderator deletes comment", moderator, Comments, http.MethodDelete, ptr(3), nil},
		{"admin deletes comment", admin, Comments, http.MethodDelete, ptr(3), nil},
		{"anonymous lists users", nil, Users, http.MethodGet, nil, apperrors.ErrUnauthenticated},
		{"user lists users", author, Users, http.MethodGet, nil, apperrors.ErrForbidden},
		{"moderator deletes user", moderator, Users, http.MethodDelete, nil, apperrors.ErrForbidden},
		{"admin lists users", admin, Users, http.MethodGet, nil, nil},
		{"anonymous reads me", nil, Me, http.MethodGet, nil, apperrors.ErrUnauthenticated},
		{"user patches me", author, Me, http.MethodPatch, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.resource, tt.method, tt.owner)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
