package services

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/logger"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/permissions"
)

// CommentService manages comments. A comment is addressed through its review
// and the review's title.
type CommentService struct {
	reviews   ReviewRepository
	comments  CommentRepository
	validator Validator
}

// NewCommentService creates a CommentService.
func NewCommentService(reviews ReviewRepository, comments CommentRepository, v Validator) *CommentService {
	return &CommentService{reviews: reviews, comments: comments, validator: v}
}

// List returns every comment of the review.
func (svc *CommentService) List(ctx context.Context, titleID, reviewID int64) ([]models.CommentDB, error) {
	if err := svc.reviewExists(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	return svc.comments.ListByReview(ctx, reviewID)
}

// Get returns one comment of the review.
func (svc *CommentService) Get(ctx context.Context, titleID, reviewID, id int64) (*models.CommentDB, error) {
	if err := svc.reviewExists(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	comment, err := svc.comments.Get(ctx, reviewID, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperrors.ErrNotFound
	}
	return comment, nil
}

// Create posts the caller's comment on the review.
func (svc *CommentService) Create(ctx context.Context, caller *models.UserDB, titleID, reviewID int64, in models.CommentInput) (*models.CommentDB, error) {
	if err := permissions.Authorize(caller, permissions.Comments, http.MethodPost, nil); err != nil {
		return nil, err
	}
	if err := svc.reviewExists(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	if err := validate(ctx, svc.validator, in); err != nil {
		return nil, err
	}

	comment := &models.CommentDB{
		ReviewID: reviewID,
		AuthorID: caller.ID,
		Author:   caller.Username,
		Text:     in.Text,
	}
	if err := svc.comments.Create(ctx, comment); err != nil {
		logger.FromContext(ctx).Errorw("failed to create comment", "review_id", reviewID, "error", err)
		return nil, err
	}
	return comment, nil
}

// Update edits a comment. Allowed to its author, moderators and admins.
func (svc *CommentService) Update(ctx context.Context, caller *models.UserDB, titleID, reviewID, id int64, patch models.CommentPatch) (*models.CommentDB, error) {
	comment, err := svc.authorized(ctx, caller, titleID, reviewID, id, http.MethodPatch)
	if err != nil {
		return nil, err
	}
	if err := validate(ctx, svc.validator, patch); err != nil {
		return nil, err
	}

	if patch.Text != nil {
		comment.Text = *patch.Text
	}
	if err := svc.comments.Update(ctx, comment); err != nil {
		logger.FromContext(ctx).Errorw("failed to update comment", "id", id, "error", err)
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment.
func (svc *CommentService) Delete(ctx context.Context, caller *models.UserDB, titleID, reviewID, id int64) error {
	if _, err := svc.authorized(ctx, caller, titleID, reviewID, id, http.MethodDelete); err != nil {
		return err
	}
	return svc.comments.Delete(ctx, id)
}

func (svc *CommentService) authorized(ctx context.Context, caller *models.UserDB, titleID, reviewID, id int64, method string) (*models.CommentDB, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	comment, err := svc.Get(ctx, titleID, reviewID, id)
	if err != nil {
		return nil, err
	}
	if err := permissions.Authorize(caller, permissions.Comments, method, &comment.AuthorID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (svc *CommentService) reviewExists(ctx context.Context, titleID, reviewID int64) error {
	review, err := svc.reviews.Get(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return apperrors.ErrNotFound
	}
	return nil
}
