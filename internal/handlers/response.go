package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/middlewares"
	"github.com/sbilibin2017/yamdb/internal/models"
)

// ErrorResponse is returned for authentication, permission and lookup failures
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable reason
	// default: Not found.
	Detail string `json:"detail"`
}

// ValidationErrorResponse maps field names to messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse map[string][]string

// writeError maps err onto the status codes of the API.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ValidationErrorResponse(ve.Fields))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Detail: "Not found."})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, ErrorResponse{Detail: "Authentication credentials were not provided."})
	case errors.Is(err, apperrors.ErrForbidden):
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, ErrorResponse{Detail: "You do not have permission to perform this action."})
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Detail: "Internal server error."})
	}
}

// authenticated returns the caller, answering 401 itself for anonymous
// requests. Handlers call it before reading the body or path.
func authenticated(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	caller := middlewares.CallerFromContext(r.Context())
	if caller == nil {
		writeError(w, r, apperrors.ErrUnauthenticated)
		return nil, false
	}
	return caller, true
}

// decode reads the JSON body into v, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Detail: "JSON parse error - " + err.Error()})
		return false
	}
	return true
}

// pathID parses a numeric path parameter. Malformed ids address nothing.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrNotFound
	}
	return id, nil
}

func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func noContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
