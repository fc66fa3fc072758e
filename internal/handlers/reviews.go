package handlers

//go:generate mockgen -source=reviews.go -destination=mock_reviews.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/yamdb/internal/models"
)

// ReviewManager defines the review operations used by the handlers.
type ReviewManager interface {
	List(ctx context.Context, titleID int64) ([]models.ReviewDB, error)
	Get(ctx context.Context, titleID, id int64) (*models.ReviewDB, error)
	Create(ctx context.Context, caller *models.UserDB, titleID int64, in models.ReviewInput) (*models.ReviewDB, error)
	Update(ctx context.Context, caller *models.UserDB, titleID, id int64, patch models.ReviewPatch) (*models.ReviewDB, error)
	Delete(ctx context.Context, caller *models.UserDB, titleID, id int64) error
}

// reviewPath parses title_id and, when withReview is set, review_id.
func reviewPath(r *http.Request, withReview bool) (titleID, reviewID int64, err error) {
	if titleID, err = pathID(r, "title_id"); err != nil {
		return 0, 0, err
	}
	if withReview {
		if reviewID, err = pathID(r, "review_id"); err != nil {
			return 0, 0, err
		}
	}
	return titleID, reviewID, nil
}

// NewListReviewsHandler returns an HTTP handler listing the reviews of a title.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {array} models.ReviewDB
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/ [get]
func NewListReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, _, err := reviewPath(r, false)
		if err != nil {
			writeError(w, r, err)
			return
		}

		reviews, err := svc.List(r.Context(), titleID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if reviews == nil {
			reviews = []models.ReviewDB{}
		}
		respond(w, r, http.StatusOK, reviews)
	}
}

// NewGetReviewHandler returns an HTTP handler fetching a review.
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 200 {object} models.ReviewDB
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/ [get]
func NewGetReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := reviewPath(r, true)
		if err != nil {
			writeError(w, r, err)
			return
		}

		review, err := svc.Get(r.Context(), titleID, reviewID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, review)
	}
}

// NewCreateReviewHandler returns an HTTP handler posting a review.
// @Summary Post a review
// @Description An author may review a title only once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review body models.ReviewInput true "Text and score"
// @Success 201 {object} models.ReviewDB
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/ [post]
func NewCreateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		titleID, _, err := reviewPath(r, false)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var in models.ReviewInput
		if !decode(w, r, &in) {
			return
		}

		review, err := svc.Create(r.Context(), caller, titleID, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusCreated, review)
	}
}

// NewUpdateReviewHandler returns an HTTP handler patching a review.
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param patch body models.ReviewPatch true "Fields to change"
// @Success 200 {object} models.ReviewDB
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/ [patch]
func NewUpdateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		titleID, reviewID, err := reviewPath(r, true)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var patch models.ReviewPatch
		if !decode(w, r, &patch) {
			return
		}

		review, err := svc.Update(r.Context(), caller, titleID, reviewID, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, review)
	}
}

// NewDeleteReviewHandler returns an HTTP handler deleting a review.
// @Summary Delete a review
// @Tags reviews
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /titles/{title_id}/reviews/{review_id}/ [delete]
func NewDeleteReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authenticated(w, r)
		if !ok {
			return
		}

		titleID, reviewID, err := reviewPath(r, true)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), caller, titleID, reviewID); err != nil {
			writeError(w, r, err)
			return
		}
		noContent(w)
	}
}
