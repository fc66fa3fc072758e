package handlers

//go:generate mockgen -source=comments.go -destination=mock_comments.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/models"
)

// CommentManager defines the comment operations used by the handlers.
type CommentManager interface {
	List(ctx context.Context, titleID, reviewID int64) ([]models.CommentDB, error)
	Get(ctx context.Context, titleID, reviewID, id int64) (*models.CommentDB, error)
	Create(ctx context.Context, caller *models.UserDB, titleID, reviewID int64, in models.CommentInput) (*models.CommentDB, error)
	Update(ctx context.Context, caller *models.UserDB, titleID, reviewID, id int64, patch models.CommentPatch) (*models.CommentDB, error)
	Delete(ctx context.Context, caller *models.UserDB, titleID, reviewID, id int64) error
}

type commentPath struct {
	titleID, reviewID, commentID int64
}

func parseCommentPath(r *http.Request, withComment bool) (commentPath, error) {
	var p commentPath
	var err error
	if p.titleID, p.reviewID, err = reviewPath(r, true); err != nil {
		return p, err
	}
	if withComment {
		if p.commentID, err = pathID(r, "comment_id"); err != nil {
			return p, err
		}
	}
	return p, nil
}

// NewListCommentsHandler returns an HTTP handler listing the comments of a review.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 200 {array} models.CommentDB
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/ [get]
func NewListCommentsHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := parseCommentPath(r, false)
		if err != nil {
			writeError(w, r, err)
			return
		}

		comments, err := svc.List(r.Context(), p.titleID, p.reviewID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if comments == nil {
			comments = []models.CommentDB{}
		}
		respond(w, r, http.StatusOK, comments)
	}
}

// NewGetCommentHandler returns an HTTP handler fetching a comment.
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} models.CommentDB
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id}/ [get]
func NewGetCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := parseCommentPath(r, true)
		if err != nil {
			writeError(w, r, err)
			return
		}

		comment, err := svc.Get(r.Context(), p.titleID, p.reviewID, p.commentID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, comment)
	}
}

// NewCreateCommentHandler returns an HTTP handler posting a comment.
// @Summary Post a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment body models.CommentInput true "Text"
// @Success 201 {object} models.CommentDB
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/ [post]
func NewCreateCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		p, err := parseCommentPath(r, false)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var in models.CommentInput
		if !decode(w, r, &in) {
			return
		}

		comment, err := svc.Create(r.Context(), caller, p.titleID, p.reviewID, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusCreated, comment)
	}
}

// NewUpdateCommentHandler returns an HTTP handler patching a comment.
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Param patch body models.CommentPatch true "Fields to change"
// @Success 200 {object} models.CommentDB
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id}/ [patch]
func NewUpdateCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		p, err := parseCommentPath(r, true)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var patch models.CommentPatch
		if !decode(w, r, &patch) {
			return
		}

		comment, err := svc.Update(r.Context(), caller, p.titleID, p.reviewID, p.commentID, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, comment)
	}
}

// NewDeleteCommentHandler returns an HTTP handler deleting a comment.
// @Summary Delete a comment
// @Tags comments
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id}/ [delete]
func NewDeleteCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		p, err := parseCommentPath(r, true)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), caller, p.titleID, p.reviewID, p.commentID); err != nil {
			writeError(w, r, err)
			return
		}
		noContent(w)
	}
}
