package handlers

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/yamdb/internal/models"
)

// UserManager defines the user operations used by the handlers.
type UserManager interface {
	List(ctx context.Context, caller *models.UserDB, search string, page models.PageRequest) ([]models.UserDB, int, error)
	Create(ctx context.Context, caller *models.UserDB, in models.UserInput) (*models.UserDB, error)
	Get(ctx context.Context, caller *models.UserDB, username string) (*models.UserDB, error)
	Update(ctx context.Context, caller *models.UserDB, username string, patch models.UserPatch) (*models.UserDB, error)
	Delete(ctx context.Context, caller *models.UserDB, username string) error
	Me(ctx context.Context, caller *models.UserDB) (*models.UserDB, error)
	UpdateMe(ctx context.Context, caller *models.UserDB, patch models.UserPatch) (*models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Username substring"
// @Param page query int false "Page number"
// @Success 200 {object} handlers.Page[models.UserDB]
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /users/ [get]
func NewListUsersHandler(svc UserManager, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		req, err := pageRequest(r, pageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}

		users, total, err := svc.List(r.Context(), caller, r.URL.Query().Get("search"), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		page, err := newPage(r, req, total, users)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, page)
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserInput true "User"
// @Success 201 {object} models.UserDB
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /users/ [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		var in models.UserInput
		if !decode(w, r, &in) {
			return
		}

		user, err := svc.Create(r.Context(), caller, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler fetching a user by username.
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{username}/ [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), caller, chi.URLParam(r, "username"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler patching a user.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{username}/ [patch]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		var patch models.UserPatch
		if !decode(w, r, &patch) {
			return
		}

		user, err := svc.Update(r.Context(), caller, chi.URLParam(r, "username"), patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{username}/ [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), caller, chi.URLParam(r, "username")); err != nil {
			writeError(w, r, err)
			return
		}
		noContent(w)
	}
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse
// @Router /users/me/ [get]
func NewMeHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		user, err := svc.Me(r.Context(), caller)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, user)
	}
}

// NewUpdateMeHandler returns an HTTP handler patching the caller's own profile.
// @Summary Update own profile
// @Description The role field is ignored.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /users/me/ [patch]
func NewUpdateMeHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		var patch models.UserPatch
		if !decode(w, r, &patch) {
			return
		}

		user, err := svc.UpdateMe(r.Context(), caller, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, user)
	}
}
