package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/permissions"
)

// TaxonService manages categories or genres. Both share the same rules.
type TaxonService struct {
	resource  permissions.Resource
	noun      string
	repo      TaxonRepository
	validator Validator
}

// NewCategoryService creates a TaxonService for categories.
func NewCategoryService(repo TaxonRepository, v Validator) *TaxonService {
	return &TaxonService{resource: permissions.Categories, noun: "category", repo: repo, validator: v}
}

// NewGenreService creates a TaxonService for genres.
func NewGenreService(repo TaxonRepository, v Validator) *TaxonService {
	return &TaxonService{resource: permissions.Genres, noun: "genre", repo: repo, validator: v}
}

// List returns one page of items whose name contains search.
func (svc *TaxonService) List(ctx context.Context, search string, page models.PageRequest) ([]models.Taxon, int, error) {
	return svc.repo.List(ctx, search, page)
}

// Create adds an item with a unique slug.
func (svc *TaxonService) Create(ctx context.Context, caller *models.UserDB, in models.TaxonInput) (*models.Taxon, error) {
	if err := permissions.Authorize(caller, svc.resource, http.MethodPost, nil); err != nil {
		return nil, err
	}
	if err := validate(ctx, svc.validator, in); err != nil {
		return nil, err
	}

	existing, err := svc.repo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("slug", fmt.Sprintf("%s with this slug already exists.", svc.noun))
	}

	item := &models.Taxon{Name: in.Name, Slug: in.Slug}
	if err := svc.repo.Create(ctx, item); err != nil {
		logger.FromContext(ctx).Errorw("failed to create "+svc.noun, "slug", in.Slug, "error", err)
		return nil, conflict(err)
	}
	return item, nil
}

// Delete removes the item addressed by slug.
func (svc *TaxonService) Delete(ctx context.Context, caller *models.UserDB, slug string) error {
	if err := permissions.Authorize(caller, svc.resource, http.MethodDelete, nil); err != nil {
		return err
	}
	return svc.repo.Delete(ctx, slug)
}
