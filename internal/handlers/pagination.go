package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

// Page is the envelope of paginated listings
// swagger:model Page
type Page[T any] struct {
	// Total number of items across all pages
	Count int `json:"count"`
	// Absolute URL of the next page, null on the last one
	Next *string `json:"next"`
	// Absolute URL of the previous page, null on the first one
	Previous *string `json:"previous"`
	// Items of this page
	Results []T `json:"results"`
}

// pageRequest reads ?page. A missing value means the first page; anything that
// is not a positive integer addresses no page.
func pageRequest(r *http.Request, size int) (models.PageRequest, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return models.PageRequest{Page: 1, Size: size}, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return models.PageRequest{}, apperrors.ErrNotFound
	}
	return models.PageRequest{Page: n, Size: size}, nil
}

// newPage wraps results. Pages past the end are NotFound, except the first.
func newPage[T any](r *http.Request, req models.PageRequest, total int, results []T) (*Page[T], error) {
	if req.Page > 1 && req.Offset() >= total {
		return nil, apperrors.ErrNotFound
	}
	if results == nil {
		results = []T{}
	}

	p := &Page[T]{Count: total, Results: results}
	if req.Offset()+len(results) < total {
		p.Next = pageURL(r, req.Page+1)
	}
	if req.Page > 1 {
		p.Previous = pageURL(r, req.Page-1)
	}
	return p, nil
}

// pageURL rebuilds the request URL pointing at page n. The first page drops the parameter.
func pageURL(r *http.Request, n int) *string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	q := r.URL.Query()
	if n <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(n))
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	s := u.String()
	return &s
}
