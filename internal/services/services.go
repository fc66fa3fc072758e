// Package services holds the business rules of the API. Every mutating
// operation takes the caller (nil when anonymous) and authorizes it against
// the permission table before touching the store.
package services

//go:generate mockgen -source=services.go -destination=mock_services.go -package=services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/mailer"
	"github.com/sbilibin2017/yamdb/internal/models"
)

// Validator checks payload struct tags.
type Validator interface {
	Struct(ctx context.Context, s any) error
}

// UserRepository persists users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context, search string, page models.PageRequest) ([]models.UserDB, int, error)
	Create(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, username string) error
}

// Mailer delivers outgoing mail.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

// TaxonRepository persists categories or genres.
type TaxonRepository interface {
	List(ctx context.Context, search string, page models.PageRequest) ([]models.Taxon, int, error)
	GetBySlug(ctx context.Context, slug string) (*models.Taxon, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]models.Taxon, error)
	Create(ctx context.Context, item *models.Taxon) error
	Delete(ctx context.Context, slug string) error
}

// TitleRepository persists titles and their genre links.
type TitleRepository interface {
	List(ctx context.Context, filter models.TitleFilter, page models.PageRequest) ([]models.TitleDB, int, error)
	Get(ctx context.Context, id int64) (*models.TitleDB, error)
	Create(ctx context.Context, title *models.TitleDB, genreIDs []int64) error
	Update(ctx context.Context, title *models.TitleDB, genreIDs []int64) error
	Delete(ctx context.Context, id int64) error
	GenresByTitleIDs(ctx context.Context, ids []int64) (map[int64][]models.Taxon, error)
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	ListByTitle(ctx context.Context, titleID int64) ([]models.ReviewDB, error)
	Get(ctx context.Context, titleID, id int64) (*models.ReviewDB, error)
	ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID int64) (bool, error)
	Create(ctx context.Context, review *models.ReviewDB) error
	Update(ctx context.Context, review *models.ReviewDB) error
	Delete(ctx context.Context, id int64) error
	ScoresByTitleIDs(ctx context.Context, ids []int64) (map[int64][]int, error)
}

// CommentRepository persists comments.
type CommentRepository interface {
	ListByReview(ctx context.Context, reviewID int64) ([]models.CommentDB, error)
	Get(ctx context.Context, reviewID, id int64) (*models.CommentDB, error)
	Create(ctx context.Context, comment *models.CommentDB) error
	Update(ctx context.Context, comment *models.CommentDB) error
	Delete(ctx context.Context, id int64) error
}

// validate runs the tag checks of s and merges extra rule failures into one error.
func validate(ctx context.Context, v Validator, s any, extra ...*apperrors.ValidationError) error {
	errs := &apperrors.ValidationError{}
	if err := v.Struct(ctx, s); err != nil {
		ve, ok := apperrors.AsValidation(err)
		if !ok {
			return err
		}
		errs.Merge(ve)
	}
	for _, e := range extra {
		errs.Merge(e)
	}
	return errs.OrNil()
}

var constraintMessages = map[string][2]string{
	"users_username_key":  {"username", "A user with that username already exists."},
	"users_email_key":     {"email", "A user with that email already exists."},
	"categories_slug_key": {"slug", "category with this slug already exists."},
	"genres_slug_key":     {"slug", "genre with this slug already exists."},
	"unique_review":       {apperrors.NonFieldErrors, "You have already reviewed this title."},
	"titles_year_check":   {"year", "Ensure this value is greater than or equal to 0."},
}

// conflict turns a store constraint violation into the field error a
// pre-check would have produced. Other errors pass through.
func conflict(err error) error {
	c, ok := apperrors.AsConstraint(err)
	if !ok {
		return err
	}
	if fm, ok := constraintMessages[c.Constraint]; ok {
		return apperrors.NewValidationError(fm[0], fm[1])
	}
	return apperrors.NewValidationError(apperrors.NonFieldErrors, fmt.Sprintf("Constraint %s violated.", c.Constraint))
}
