package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAnonymousWritesAreUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserManager(ctrl)
	taxons := NewMockTaxonManager(ctrl)
	titles := NewMockTitleManager(ctrl)
	reviews := NewMockReviewManager(ctrl)
	comments := NewMockCommentManager(ctrl)

	const (
		review  = "/titles/{title_id}/reviews/{review_id}/"
		comment = "/titles/{title_id}/reviews/{review_id}/comments/{comment_id}/"
	)

	tests := []struct {
		name    string
		method  string
		pattern string
		target  string
		body    any
		handler http.HandlerFunc
	}{
		{"create title with broken body", http.MethodPost, "/titles/", "/titles/", `{"name":`, NewCreateTitleHandler(titles)},
		{"update title with mistyped body", http.MethodPatch, "/titles/{title_id}/", "/titles/1/", `{"year":"soon"}`, NewUpdateTitleHandler(titles)},
		{"delete title with bad id", http.MethodDelete, "/titles/{title_id}/", "/titles/abc/", nil, NewDeleteTitleHandler(titles)},
		{"create category with broken body", http.MethodPost, "/categories/", "/categories/", `{`, NewCreateTaxonHandler(taxons)},
		{"delete genre", http.MethodDelete, "/genres/{slug}/", "/genres/rock/", nil, NewDeleteTaxonHandler(taxons)},
		{"create review with broken body", http.MethodPost, "/titles/{title_id}/reviews/", "/titles/1/reviews/", `{"score":`, NewCreateReviewHandler(reviews)},
		{"update review", http.MethodPatch, review, "/titles/1/reviews/2/", `[]`, NewUpdateReviewHandler(reviews)},
		{"delete review with bad id", http.MethodDelete, review, "/titles/1/reviews/x/", nil, NewDeleteReviewHandler(reviews)},
		{"create comment with broken body", http.MethodPost, "/titles/{title_id}/reviews/{review_id}/comments/", "/titles/1/reviews/2/comments/", `{`, NewCreateCommentHandler(comments)},
		{"update comment", http.MethodPatch, comment, "/titles/1/reviews/2/comments/3/", `{"text":1}`, NewUpdateCommentHandler(comments)},
		{"delete comment", http.MethodDelete, comment, "/titles/1/reviews/2/comments/3/", nil, NewDeleteCommentHandler(comments)},
		{"list users with bad page", http.MethodGet, "/users/", "/users/?page=abc", nil, NewListUsersHandler(users, 10)},
		{"create user with broken body", http.MethodPost, "/users/", "/users/", `{"username":`, NewCreateUserHandler(users)},
		{"get user", http.MethodGet, "/users/{username}/", "/users/eve/", nil, NewGetUserHandler(users)},
		{"update user", http.MethodPatch, "/users/{username}/", "/users/eve/", `{`, NewUpdateUserHandler(users)},
		{"delete user", http.MethodDelete, "/users/{username}/", "/users/eve/", nil, NewDeleteUserHandler(users)},
		{"me", http.MethodGet, "/users/me/", "/users/me/", nil, NewMeHandler(users)},
		{"update me with broken body", http.MethodPatch, "/users/me/", "/users/me/", `{"bio":`, NewUpdateMeHandler(users)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, tt.method, tt.pattern, tt.target, nil, tt.body, tt.handler)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Authentication credentials were not provided.", decodeBody(t, rr)["detail"])
		})
	}
}

func TestAuthenticatedMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	titles := NewMockTitleManager(ctrl)

	rr := serve(t, http.MethodPost, "/titles/", "/titles/", adminUser, `{"name":`, NewCreateTitleHandler(titles))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeBody(t, rr)["detail"], "JSON parse error")
}
