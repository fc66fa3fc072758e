package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/services"
	"github.com/sbilibin2017/yamdb/internal/validation"
)

func TestTaxonService_Create(t *testing.T) {
	ctx := context.Background()
	in := models.TaxonInput{Name: "Films", Slug: "films"}

	tests := []struct {
		name   string
		caller *models.UserDB
		in     models.TaxonInput
		setup  func(repo *services.MockTaxonRepository)
		check  func(t *testing.T, item *models.Taxon, err error)
	}{
		{
			name:   "anonymous",
			caller: nil,
			in:     in,
			check: func(t *testing.T, _ *models.Taxon, err error) {
				assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
			},
		},
		{
			name:   "non admin",
			caller: moderator,
			in:     in,
			check: func(t *testing.T, _ *models.Taxon, err error) {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			},
		},
		{
			name:   "invalid slug",
			caller: admin,
			in:     models.TaxonInput{Name: "Films", Slug: "fil ms"},
			check: func(t *testing.T, _ *models.Taxon, err error) {
				assert.Contains(t, fieldsOf(t, err), "slug")
			},
		},
		{
			name:   "duplicate slug",
			caller: admin,
			in:     in,
			setup: func(repo *services.MockTaxonRepository) {
				repo.EXPECT().GetBySlug(ctx, "films").Return(&models.Taxon{ID: 1, Slug: "films"}, nil)
			},
			check: func(t *testing.T, _ *models.Taxon, err error) {
				assert.Equal(t, []string{"category with this slug already exists."}, fieldsOf(t, err)["slug"])
			},
		},
		{
			name:   "created",
			caller: admin,
			in:     in,
			setup: func(repo *services.MockTaxonRepository) {
				repo.EXPECT().GetBySlug(ctx, "films").Return(nil, nil)
				repo.EXPECT().Create(ctx, &models.Taxon{Name: "Films", Slug: "films"}).Return(nil)
			},
			check: func(t *testing.T, item *models.Taxon, err error) {
				require.NoError(t, err)
				assert.Equal(t, "films", item.Slug)
			},
		},
		{
			name:   "lost race",
			caller: admin,
			in:     in,
			setup: func(repo *services.MockTaxonRepository) {
				repo.EXPECT().GetBySlug(ctx, "films").Return(nil, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(&apperrors.ConstraintError{Constraint: "categories_slug_key"})
			},
			check: func(t *testing.T, _ *models.Taxon, err error) {
				assert.Contains(t, fieldsOf(t, err), "slug")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := services.NewMockTaxonRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}
			item, err := services.NewCategoryService(repo, validation.New()).Create(ctx, tt.caller, tt.in)
			tt.check(t, item, err)
		})
	}
}

func TestTaxonService_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := services.NewMockTaxonRepository(ctrl)
	svc := services.NewGenreService(repo, validation.New())

	assert.ErrorIs(t, svc.Delete(ctx, plain, "drama"), apperrors.ErrForbidden)

	repo.EXPECT().Delete(ctx, "drama").Return(nil)
	assert.NoError(t, svc.Delete(ctx, admin, "drama"))
}

func TestTaxonService_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := services.NewMockTaxonRepository(ctrl)
	page := models.PageRequest{Page: 1, Size: 10}

	repo.EXPECT().List(ctx, "dra", page).Return([]models.Taxon{{Name: "Drama", Slug: "drama"}}, 1, nil)

	items, total, err := services.NewGenreService(repo, validation.New()).List(ctx, "dra", page)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "drama", items[0].Slug)
}
