package services

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/permissions"
)

// ReviewService manages reviews of a title. An author reviews a title at most once.
type ReviewService struct {
	titles    TitleRepository
	reviews   ReviewRepository
	validator Validator
}

// NewReviewService creates a ReviewService.
func NewReviewService(titles TitleRepository, reviews ReviewRepository, v Validator) *ReviewService {
	return &ReviewService{titles: titles, reviews: reviews, validator: v}
}

// List returns every review of the title.
func (svc *ReviewService) List(ctx context.Context, titleID int64) ([]models.ReviewDB, error) {
	if err := svc.titleExists(ctx, titleID); err != nil {
		return nil, err
	}
	return svc.reviews.ListByTitle(ctx, titleID)
}

// Get returns one review of the title.
func (svc *ReviewService) Get(ctx context.Context, titleID, id int64) (*models.ReviewDB, error) {
	review, err := svc.reviews.Get(ctx, titleID, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.ErrNotFound
	}
	return review, nil
}

// Create posts the caller's review of the title.
func (svc *ReviewService) Create(ctx context.Context, caller *models.UserDB, titleID int64, in models.ReviewInput) (*models.ReviewDB, error) {
	if err := permissions.Authorize(caller, permissions.Reviews, http.MethodPost, nil); err != nil {
		return nil, err
	}
	if err := svc.titleExists(ctx, titleID); err != nil {
		return nil, err
	}
	if err := validate(ctx, svc.validator, in); err != nil {
		return nil, err
	}

	exists, err := svc.reviews.ExistsByTitleAndAuthor(ctx, titleID, caller.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict(&apperrors.ConstraintError{Constraint: "unique_review"})
	}

	review := &models.ReviewDB{
		TitleID:  titleID,
		AuthorID: caller.ID,
		Author:   caller.Username,
		Text:     in.Text,
		Score:    in.Score,
	}
	if err := svc.reviews.Create(ctx, review); err != nil {
		logger.FromContext(ctx).Errorw("failed to create review", "title_id", titleID, "author", caller.Username, "error", err)
		return nil, conflict(err)
	}
	return review, nil
}

// Update edits a review. Allowed to its author, moderators and admins.
func (svc *ReviewService) Update(ctx context.Context, caller *models.UserDB, titleID, id int64, patch models.ReviewPatch) (*models.ReviewDB, error) {
	review, err := svc.authorized(ctx, caller, titleID, id, http.MethodPatch)
	if err != nil {
		return nil, err
	}
	if err := validate(ctx, svc.validator, patch); err != nil {
		return nil, err
	}

	if patch.Text != nil {
		review.Text = *patch.Text
	}
	if patch.Score != nil {
		review.Score = *patch.Score
	}
	if err := svc.reviews.Update(ctx, review); err != nil {
		logger.FromContext(ctx).Errorw("failed to update review", "id", id, "error", err)
		return nil, err
	}
	return review, nil
}

// Delete removes a review and its comments.
func (svc *ReviewService) Delete(ctx context.Context, caller *models.UserDB, titleID, id int64) error {
	if _, err := svc.authorized(ctx, caller, titleID, id, http.MethodDelete); err != nil {
		return err
	}
	return svc.reviews.Delete(ctx, id)
}

// authorized loads the review and checks the caller may apply method to it.
// Anonymous callers are rejected before the lookup.
func (svc *ReviewService) authorized(ctx context.Context, caller *models.UserDB, titleID, id int64, method string) (*models.ReviewDB, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	review, err := svc.Get(ctx, titleID, id)
	if err != nil {
		return nil, err
	}
	if err := permissions.Authorize(caller, permissions.Reviews, method, &review.AuthorID); err != nil {
		return nil, err
	}
	return review, nil
}

func (svc *ReviewService) titleExists(ctx context.Context, titleID int64) error {
	title, err := svc.titles.Get(ctx, titleID)
	if err != nil {
		return err
	}
	if title == nil {
		return apperrors.ErrNotFound
	}
	return nil
}
