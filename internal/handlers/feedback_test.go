package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

func TestTaxonHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockTaxonManager(ctrl)

	m.EXPECT().List(gomock.Any(), "fil", models.PageRequest{Page: 1, Size: 10}).
		Return([]models.Taxon{{ID: 3, Name: "Films", Slug: "films"}}, 1, nil)
	m.EXPECT().Create(gomock.Any(), adminUser, models.TaxonInput{Name: "Films", Slug: "films"}).
		Return(nil, apperrors.NewValidationError("slug", "category with this slug already exists."))
	m.EXPECT().Delete(gomock.Any(), bobUser, "films").Return(apperrors.ErrForbidden)

	rr := serve(t, http.MethodGet, "/categories/", "/categories/?search=fil", nil, nil, NewListTaxonsHandler(m, 10))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":1,"next":null,"previous":null,"results":[{"name":"Films","slug":"films"}]}`, rr.Body.String())

	rr = serve(t, http.MethodPost, "/categories/", "/categories/", adminUser,
		models.TaxonInput{Name: "Films", Slug: "films"}, NewCreateTaxonHandler(m))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(t, http.MethodDelete, "/categories/{slug}/", "/categories/films/", bobUser, nil, NewDeleteTaxonHandler(m))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestReviewHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockReviewManager(ctrl)
	pub := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	review := &models.ReviewDB{ID: 4, TitleID: 1, AuthorID: 7, Author: "bob", Text: "good", Score: 8, PubDate: pub}

	m.EXPECT().List(gomock.Any(), int64(1)).Return(nil, nil)
	m.EXPECT().Create(gomock.Any(), bobUser, int64(1), models.ReviewInput{Text: "good", Score: 8}).Return(review, nil)
	m.EXPECT().Create(gomock.Any(), bobUser, int64(1), models.ReviewInput{Text: "again", Score: 2}).
		Return(nil, apperrors.NewValidationError(apperrors.NonFieldErrors, "You have already reviewed this title."))
	m.EXPECT().Get(gomock.Any(), int64(1), int64(4)).Return(review, nil)

	rr := serve(t, http.MethodGet, "/titles/{title_id}/reviews/", "/titles/1/reviews/", nil, nil, NewListReviewsHandler(m))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = serve(t, http.MethodPost, "/titles/{title_id}/reviews/", "/titles/1/reviews/", bobUser,
		models.ReviewInput{Text: "good", Score: 8}, NewCreateReviewHandler(m))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":4,"author":"bob","text":"good","score":8,"pub_date":"2024-01-02T03:04:05Z"}`, rr.Body.String())

	rr = serve(t, http.MethodPost, "/titles/{title_id}/reviews/", "/titles/1/reviews/", bobUser,
		models.ReviewInput{Text: "again", Score: 2}, NewCreateReviewHandler(m))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"non_field_errors":["You have already reviewed this title."]}`, rr.Body.String())

	rr = serve(t, http.MethodGet, "/titles/{title_id}/reviews/{review_id}/", "/titles/1/reviews/4/", nil, nil, NewGetReviewHandler(m))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestReviewHandlers_UpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockReviewManager(ctrl)
	score := 9

	m.EXPECT().Update(gomock.Any(), bobUser, int64(1), int64(4), models.ReviewPatch{Score: &score}).
		Return(&models.ReviewDB{ID: 4, Author: "bob", Score: 9}, nil)
	m.EXPECT().Delete(gomock.Any(), bobUser, int64(1), int64(4)).Return(apperrors.ErrForbidden)

	rr := serve(t, http.MethodPatch, "/titles/{title_id}/reviews/{review_id}/", "/titles/1/reviews/4/", bobUser,
		map[string]int{"score": 9}, NewUpdateReviewHandler(m))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, http.MethodDelete, "/titles/{title_id}/reviews/{review_id}/", "/titles/1/reviews/4/", bobUser, nil, NewDeleteReviewHandler(m))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCommentHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMockCommentManager(ctrl)
	const item = "/titles/{title_id}/reviews/{review_id}/comments/{comment_id}/"
	const list = "/titles/{title_id}/reviews/{review_id}/comments/"
	text := "edited"

	m.EXPECT().List(gomock.Any(), int64(1), int64(4)).Return(nil, apperrors.ErrNotFound)
	m.EXPECT().Create(gomock.Any(), bobUser, int64(1), int64(4), models.CommentInput{Text: "hi"}).
		Return(&models.CommentDB{ID: 9, Author: "bob", Text: "hi"}, nil)
	m.EXPECT().Get(gomock.Any(), int64(1), int64(4), int64(9)).Return(&models.CommentDB{ID: 9, Author: "bob", Text: "hi"}, nil)
	m.EXPECT().Update(gomock.Any(), bobUser, int64(1), int64(4), int64(9), models.CommentPatch{Text: &text}).
		Return(&models.CommentDB{ID: 9, Author: "bob", Text: "edited"}, nil)

	rr := serve(t, http.MethodGet, list, "/titles/1/reviews/4/comments/", nil, nil, NewListCommentsHandler(m))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, http.MethodPost, list, "/titles/1/reviews/4/comments/", bobUser, models.CommentInput{Text: "hi"}, NewCreateCommentHandler(m))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(t, http.MethodGet, item, "/titles/1/reviews/4/comments/9/", nil, nil, NewGetCommentHandler(m))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, http.MethodPatch, item, "/titles/1/reviews/4/comments/9/", bobUser, map[string]string{"text": "edited"}, NewUpdateCommentHandler(m))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "edited", decodeBody(t, rr)["text"])

	rr = serve(t, http.MethodDelete, item, "/titles/1/reviews/4/comments/9/", nil, nil, NewDeleteCommentHandler(m))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(t, http.MethodGet, item, "/titles/1/reviews/4/comments/x/", nil, nil, NewGetCommentHandler(m))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
