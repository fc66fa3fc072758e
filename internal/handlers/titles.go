package handlers

//go:generate mockgen -source=titles.go -destination=mock_titles.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

// TitleManager defines the title operations used by the handlers.
type TitleManager interface {
	List(ctx context.Context, filter models.TitleFilter, page models.PageRequest) ([]models.Title, int, error)
	Get(ctx context.Context, id int64) (*models.Title, error)
	Create(ctx context.Context, caller *models.UserDB, in models.TitleInput) (*models.Title, error)
	Update(ctx context.Context, caller *models.UserDB, id int64, patch models.TitlePatch) (*models.Title, error)
	Delete(ctx context.Context, caller *models.UserDB, id int64) error
}

// titleFilter reads the name, category, genre and year query parameters.
func titleFilter(r *http.Request) (models.TitleFilter, error) {
	q := r.URL.Query()
	f := models.TitleFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		Genre:    q.Get("genre"),
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return f, apperrors.NewValidationError("year", "Enter a number.")
		}
		f.Year = &year
	}
	return f, nil
}

// NewListTitlesHandler returns an HTTP handler listing titles.
// @Summary List titles
// @Tags titles
// @Produce json
// @Param name query string false "Exact name"
// @Param category query string false "Category slug"
// @Param genre query string false "Genre slug"
// @Param year query int false "Release year"
// @Param page query int false "Page number"
// @Success 200 {object} handlers.Page[models.Title]
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Page out of range"
// @Router /titles/ [get]
func NewListTitlesHandler(svc TitleManager, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := titleFilter(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		req, err := pageRequest(r, pageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}

		titles, total, err := svc.List(r.Context(), filter, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		page, err := newPage(r, req, total, titles)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, page)
	}
}

// NewGetTitleHandler returns an HTTP handler fetching a title.
// @Summary Get a title
// @Tags titles
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {object} models.Title
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/ [get]
func NewGetTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		title, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, title)
	}
}

// NewCreateTitleHandler returns an HTTP handler creating a title.
// @Summary Create a title
// @Tags titles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title body models.TitleInput true "Title with genre and category slugs"
// @Success 201 {object} models.Title
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /titles/ [post]
func NewCreateTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		var in models.TitleInput
		if !decode(w, r, &in) {
			return
		}

		title, err := svc.Create(r.Context(), caller, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusCreated, title)
	}
}

// NewUpdateTitleHandler returns an HTTP handler patching a title.
// @Summary Update a title
// @Tags titles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param patch body models.TitlePatch true "Fields to change"
// @Success 200 {object} models.Title
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/ [patch]
func NewUpdateTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var patch models.TitlePatch
		if !decode(w, r, &patch) {
			return
		}

		title, err := svc.Update(r.Context(), caller, id, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, title)
	}
}

// NewDeleteTitleHandler returns an HTTP handler deleting a title.
// @Summary Delete a title
// @Tags titles
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/ [delete]
func NewDeleteTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		id, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), caller, id); err != nil {
			writeError(w, r, err)
			return
		}
		noContent(w)
	}
}
