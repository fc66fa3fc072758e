// Package permissions implements the role based authorization table.
//
// Decisions are a pure function of the caller, the addressed resource and the
// HTTP method, composed from three predicates joined by logical OR.
package permissions

import (
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

// Resource names an API resource family.
type Resource string

// Resources guarded by the policy
const (
	Categories Resource = "categories"
	Genres     Resource = "genres"
	Titles     Resource = "titles"
	Reviews    Resource = "reviews"
	Comments   Resource = "comments"
	Users      Resource = "users"
	Me         Resource = "me"
)

// ReadOnlySafe reports whether method only reads.
func ReadOnlySafe(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// IsAdmin reports whether caller has the admin role or is a superuser.
func IsAdmin(caller *models.UserDB) bool {
	return caller.IsAdmin()
}

// IsOwnerOrModerator reports whether caller authored the record, moderates, or administers.
func IsOwnerOrModerator(caller *models.UserDB, authorID int64) bool {
	if caller == nil {
		return false
	}
	return caller.ID == authorID || caller.IsModerator() || IsAdmin(caller)
}

// Authorize decides whether caller may apply method to resource.
// ownerID is the author of the addressed record, nil for collection requests.
// A nil caller is anonymous.
func Authorize(caller *models.UserDB, resource Resource, method string, ownerID *int64) error {
	switch resource {
	case Users:
		if caller == nil {
			return apperrors.ErrUnauthenticated
		}
		if !IsAdmin(caller) {
			return apperrors.ErrForbidden
		}
		return nil
	case Me:
		if caller == nil {
			return apperrors.ErrUnauthenticated
		}
		return nil
	}

	if ReadOnlySafe(method) {
		return nil
	}
	if caller == nil {
		return apperrors.ErrUnauthenticated
	}

	switch resource {
	case Categories, Genres, Titles:
		if IsAdmin(caller) {
			return nil
		}
	case Reviews, Comments:
		if ownerID == nil || IsOwnerOrModerator(caller, *ownerID) {
			return nil
		}
	}
	return apperrors.ErrForbidden
}
