package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/permissions"
	"github.com/sbilibin2017/yamdb/internal/rating"
	"github.com/sbilibin2017/yamdb/internal/validation"
)

// TitleService manages titles and assembles their read representation.
type TitleService struct {
	titles     TitleRepository
	categories TaxonRepository
	genres     TaxonRepository
	reviews    ReviewRepository
	validator  Validator
	now        func() time.Time
}

// TitleOpt configures a TitleService.
type TitleOpt func(*TitleService)

// WithClock overrides the clock used for the release year check.
func WithClock(now func() time.Time) TitleOpt {
	return func(s *TitleService) {
		s.now = now
	}
}

// NewTitleService creates a TitleService.
func NewTitleService(titles TitleRepository, categories, genres TaxonRepository, reviews ReviewRepository, v Validator, opts ...TitleOpt) *TitleService {
	svc := &TitleService{
		titles:     titles,
		categories: categories,
		genres:     genres,
		reviews:    reviews,
		validator:  v,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// List returns one page of titles matching filter with genres and ratings.
func (svc *TitleService) List(ctx context.Context, filter models.TitleFilter, page models.PageRequest) ([]models.Title, int, error) {
	rows, total, err := svc.titles.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	titles, err := svc.expand(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

// Get returns the title with the given id.
func (svc *TitleService) Get(ctx context.Context, id int64) (*models.Title, error) {
	row, err := svc.titles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	titles, err := svc.expand(ctx, []models.TitleDB{*row})
	if err != nil {
		return nil, err
	}
	return &titles[0], nil
}

// Create adds a title. Genres and category are referenced by slug.
func (svc *TitleService) Create(ctx context.Context, caller *models.UserDB, in models.TitleInput) (*models.Title, error) {
	if err := permissions.Authorize(caller, permissions.Titles, http.MethodPost, nil); err != nil {
		return nil, err
	}
	rules := []*apperrors.ValidationError{validation.CheckGenres(in.Genre)}
	if in.Year != nil {
		rules = append(rules, validation.CheckYear(*in.Year, svc.now()))
	}
	if err := validate(ctx, svc.validator, in, rules...); err != nil {
		return nil, err
	}

	genreIDs, categoryID, err := svc.resolve(ctx, in.Genre, in.Category)
	if err != nil {
		return nil, err
	}

	row := &models.TitleDB{
		Name:        in.Name,
		Year:        *in.Year,
		Description: in.Description,
		CategoryID:  categoryID,
	}
	if err := svc.titles.Create(ctx, row, genreIDs); err != nil {
		logger.FromContext(ctx).Errorw("failed to create title", "name", in.Name, "error", err)
		return nil, conflict(err)
	}
	return svc.Get(ctx, row.ID)
}

// Update applies patch to the title with the given id.
func (svc *TitleService) Update(ctx context.Context, caller *models.UserDB, id int64, patch models.TitlePatch) (*models.Title, error) {
	if err := permissions.Authorize(caller, permissions.Titles, http.MethodPatch, nil); err != nil {
		return nil, err
	}

	row, err := svc.titles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.ErrNotFound
	}

	var rules []*apperrors.ValidationError
	if patch.Year != nil {
		rules = append(rules, validation.CheckYear(*patch.Year, svc.now()))
	}
	if patch.Genre != nil {
		rules = append(rules, validation.CheckGenres(patch.Genre))
	}
	if err := validate(ctx, svc.validator, patch, rules...); err != nil {
		return nil, err
	}

	genreIDs, categoryID, err := svc.resolve(ctx, patch.Genre, patch.Category)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Year != nil {
		row.Year = *patch.Year
	}
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if categoryID != nil {
		row.CategoryID = categoryID
	}

	if err := svc.titles.Update(ctx, row, genreIDs); err != nil {
		logger.FromContext(ctx).Errorw("failed to update title", "id", id, "error", err)
		return nil, conflict(err)
	}
	return svc.Get(ctx, id)
}

// Delete removes the title with the given id along with its reviews.
func (svc *TitleService) Delete(ctx context.Context, caller *models.UserDB, id int64) error {
	if err := permissions.Authorize(caller, permissions.Titles, http.MethodDelete, nil); err != nil {
		return err
	}
	return svc.titles.Delete(ctx, id)
}

// resolve maps genre and category slugs to ids. A nil genres slice yields nil ids.
func (svc *TitleService) resolve(ctx context.Context, genres []string, category *string) ([]int64, *int64, error) {
	errs := &apperrors.ValidationError{}

	var genreIDs []int64
	if genres != nil {
		found, err := svc.genres.GetBySlugs(ctx, genres)
		if err != nil {
			return nil, nil, err
		}
		bySlug := make(map[string]int64, len(found))
		for _, g := range found {
			bySlug[g.Slug] = g.ID
		}
		genreIDs = make([]int64, 0, len(genres))
		for _, slug := range genres {
			id, ok := bySlug[slug]
			if !ok {
				errs.Add("genre", fmt.Sprintf("Object with slug=%s does not exist.", slug))
				continue
			}
			genreIDs = append(genreIDs, id)
		}
	}

	var categoryID *int64
	if category != nil {
		c, err := svc.categories.GetBySlug(ctx, *category)
		if err != nil {
			return nil, nil, err
		}
		if c == nil {
			errs.Add("category", fmt.Sprintf("Object with slug=%s does not exist.", *category))
		} else {
			categoryID = &c.ID
		}
	}

	if err := errs.OrNil(); err != nil {
		return nil, nil, err
	}
	return genreIDs, categoryID, nil
}

// expand attaches genres, category and rating to rows.
func (svc *TitleService) expand(ctx context.Context, rows []models.TitleDB) ([]models.Title, error) {
	titles := make([]models.Title, 0, len(rows))
	if len(rows) == 0 {
		return titles, nil
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	genres, err := svc.titles.GenresByTitleIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	scores, err := svc.reviews.ScoresByTitleIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	ratings := rating.ByTitle(scores)

	for _, r := range rows {
		t := models.Title{
			ID:          r.ID,
			Name:        r.Name,
			Year:        r.Year,
			Rating:      ratings[r.ID],
			Description: r.Description,
			Genre:       genres[r.ID],
		}
		if t.Genre == nil {
			t.Genre = []models.Taxon{}
		}
		if r.CategoryID != nil && r.CategorySlug != nil {
			t.Category = &models.Taxon{ID: *r.CategoryID, Name: deref(r.CategoryName), Slug: *r.CategorySlug}
		}
		titles = append(titles, t)
	}
	return titles, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
