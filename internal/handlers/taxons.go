package handlers

//go:generate mockgen -source=taxons.go -destination=mock_taxons.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/yamdb/internal/models"
)

// TaxonManager is implemented by the category and genre services.
type TaxonManager interface {
	List(ctx context.Context, search string, page models.PageRequest) ([]models.Taxon, int, error)
	Create(ctx context.Context, caller *models.UserDB, in models.TaxonInput) (*models.Taxon, error)
	Delete(ctx context.Context, caller *models.UserDB, slug string) error
}

// NewListTaxonsHandler returns an HTTP handler listing categories or genres.
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Name substring"
// @Param page query int false "Page number"
// @Success 200 {object} handlers.Page[models.Taxon]
// @Failure 404 {object} handlers.ErrorResponse "Page out of range"
// @Router /categories/ [get]
// @Router /genres/ [get]
func NewListTaxonsHandler(svc TaxonManager, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := pageRequest(r, pageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}

		items, total, err := svc.List(r.Context(), r.URL.Query().Get("search"), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		page, err := newPage(r, req, total, items)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, page)
	}
}

// NewCreateTaxonHandler returns an HTTP handler creating a category or genre.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.TaxonInput true "Name and slug"
// @Success 201 {object} models.Taxon
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /categories/ [post]
// @Router /genres/ [post]
func NewCreateTaxonHandler(svc TaxonManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		var in models.TaxonInput
		if !decode(w, r, &in) {
			return
		}

		item, err := svc.Create(r.Context(), caller, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusCreated, item)
	}
}

// NewDeleteTaxonHandler returns an HTTP handler deleting a category or genre by slug.
// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Param slug path string true "Slug"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /categories/{slug}/ [delete]
// @Router /genres/{slug}/ [delete]
func NewDeleteTaxonHandler(svc TaxonManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), caller, chi.URLParam(r, "slug")); err != nil {
			writeError(w, r, err)
			return
		}
		noContent(w)
	}
}
