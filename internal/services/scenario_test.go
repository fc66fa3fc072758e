package services_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/confirmation"
	"github.com/sbilibin2017/yamdb/internal/jwt"
	"github.com/sbilibin2017/yamdb/internal/mailer"
	"github.com/sbilibin2017/yamdb/internal/models"
	"github.com/sbilibin2017/yamdb/internal/services"
	"github.com/sbilibin2017/yamdb/internal/validation"
)

// memStore backs the scenario with maps and enforces the same unique keys as the schema.
type memStore struct {
	nextID  int64
	users   map[string]*models.UserDB
	genres  map[string]*models.Taxon
	titles  map[int64]*models.TitleDB
	links   map[int64][]int64
	reviews map[int64]*models.ReviewDB
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]*models.UserDB{},
		genres:  map[string]*models.Taxon{},
		titles:  map[int64]*models.TitleDB{},
		links:   map[int64][]int64{},
		reviews: map[int64]*models.ReviewDB{},
	}
}

func (m *memStore) id() int64 { m.nextID++; return m.nextID }

type memUsers struct{ *memStore }

func (m memUsers) GetByUsername(_ context.Context, username string) (*models.UserDB, error) {
	return m.users[username], nil
}

func (m memUsers) GetByEmail(_ context.Context, email string) (*models.UserDB, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m memUsers) List(_ context.Context, search string, _ models.PageRequest) ([]models.UserDB, int, error) {
	var out []models.UserDB
	for _, u := range m.users {
		if strings.Contains(u.Username, search) {
			out = append(out, *u)
		}
	}
	return out, len(out), nil
}

func (m memUsers) Create(ctx context.Context, u *models.UserDB) error {
	if m.users[u.Username] != nil {
		return &apperrors.ConstraintError{Constraint: "users_username_key"}
	}
	u.ID = m.id()
	cp := *u
	m.users[u.Username] = &cp
	return nil
}

func (m memUsers) Update(_ context.Context, u *models.UserDB) error {
	cp := *u
	m.users[u.Username] = &cp
	return nil
}

func (m memUsers) Delete(_ context.Context, username string) error {
	delete(m.users, username)
	return nil
}

type memGenres struct{ *memStore }

func (m memGenres) List(context.Context, string, models.PageRequest) ([]models.Taxon, int, error) {
	return nil, 0, nil
}

func (m memGenres) GetBySlug(_ context.Context, slug string) (*models.Taxon, error) {
	return m.genres[slug], nil
}

func (m memGenres) GetBySlugs(_ context.Context, slugs []string) ([]models.Taxon, error) {
	var out []models.Taxon
	for _, s := range slugs {
		if g := m.genres[s]; g != nil {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m memGenres) Create(_ context.Context, item *models.Taxon) error {
	item.ID = m.id()
	m.genres[item.Slug] = item
	return nil
}

func (m memGenres) Delete(_ context.Context, slug string) error {
	delete(m.genres, slug)
	return nil
}

type memTitles struct{ *memStore }

func (m memTitles) List(context.Context, models.TitleFilter, models.PageRequest) ([]models.TitleDB, int, error) {
	return nil, 0, nil
}

func (m memTitles) Get(_ context.Context, id int64) (*models.TitleDB, error) {
	t := m.titles[id]
	if t == nil {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m memTitles) Create(_ context.Context, t *models.TitleDB, genreIDs []int64) error {
	t.ID = m.id()
	cp := *t
	m.titles[t.ID] = &cp
	m.links[t.ID] = genreIDs
	return nil
}

func (m memTitles) Update(_ context.Context, t *models.TitleDB, genreIDs []int64) error {
	cp := *t
	m.titles[t.ID] = &cp
	if genreIDs != nil {
		m.links[t.ID] = genreIDs
	}
	return nil
}

func (m memTitles) Delete(_ context.Context, id int64) error {
	delete(m.titles, id)
	return nil
}

func (m memTitles) GenresByTitleIDs(_ context.Context, ids []int64) (map[int64][]models.Taxon, error) {
	out := map[int64][]models.Taxon{}
	for _, id := range ids {
		for _, gid := range m.links[id] {
			for _, g := range m.genres {
				if g.ID == gid {
					out[id] = append(out[id], *g)
				}
			}
		}
	}
	return out, nil
}

type memReviews struct{ *memStore }

func (m memReviews) ListByTitle(_ context.Context, titleID int64) ([]models.ReviewDB, error) {
	var out []models.ReviewDB
	for _, r := range m.reviews {
		if r.TitleID == titleID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memReviews) Get(_ context.Context, titleID, id int64) (*models.ReviewDB, error) {
	r := m.reviews[id]
	if r == nil || r.TitleID != titleID {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m memReviews) ExistsByTitleAndAuthor(_ context.Context, titleID, authorID int64) (bool, error) {
	for _, r := range m.reviews {
		if r.TitleID == titleID && r.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

func (m memReviews) Create(ctx context.Context, r *models.ReviewDB) error {
	if ok, _ := m.ExistsByTitleAndAuthor(ctx, r.TitleID, r.AuthorID); ok {
		return &apperrors.ConstraintError{Constraint: "unique_review"}
	}
	r.ID = m.id()
	r.PubDate = time.Now()
	cp := *r
	m.reviews[r.ID] = &cp
	return nil
}

func (m memReviews) Update(_ context.Context, r *models.ReviewDB) error {
	cp := *r
	m.reviews[r.ID] = &cp
	return nil
}

func (m memReviews) Delete(_ context.Context, id int64) error {
	delete(m.reviews, id)
	return nil
}

func (m memReviews) ScoresByTitleIDs(_ context.Context, ids []int64) (map[int64][]int, error) {
	out := map[int64][]int{}
	for _, id := range ids {
		for _, r := range m.reviews {
			if r.TitleID == id {
				out[id] = append(out[id], r.Score)
			}
		}
	}
	return out, nil
}

type recordingMailer struct{ sent []mailer.Message }

func (r *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

func TestScenario_SignupReviewRating(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	v := validation.New()
	mail := &recordingMailer{}
	tokens := jwt.New(jwt.WithSecretKey("test-secret"))
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	auth := services.NewAuthService(memUsers{store}, mail, tokens, v)
	genres := services.NewGenreService(memGenres{store}, v)
	titles := services.NewTitleService(memTitles{store}, memGenres{store}, memGenres{store}, memReviews{store}, v,
		services.WithClock(func() time.Time { return now }))
	reviews := services.NewReviewService(memTitles{store}, memReviews{store}, v)

	_, err := auth.Signup(ctx, models.SignupInput{Username: "me", Email: "me@x.com"})
	assert.Contains(t, fieldsOf(t, err), "username")

	bob, err := auth.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "b@x.com", mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Body, confirmation.Code("bob"))

	again, err := auth.Signup(ctx, models.SignupInput{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, again.ID)

	_, err = auth.Token(ctx, models.TokenInput{Username: "bob", ConfirmationCode: "wrong"})
	assert.Contains(t, fieldsOf(t, err), "confirmation_code")

	token, err := auth.Token(ctx, models.TokenInput{Username: "bob", ConfirmationCode: confirmation.Code("bob")})
	require.NoError(t, err)
	claims, err := tokens.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, claims.UserID)

	root := &models.UserDB{ID: store.id(), Username: "root", Email: "root@x.com", Role: models.RoleAdmin}
	_, err = genres.Create(ctx, root, models.TaxonInput{Name: "Drama", Slug: "drama"})
	require.NoError(t, err)

	_, err = titles.Create(ctx, bob, models.TitleInput{Name: "X", Year: intPtr(2000), Genre: []string{"drama"}})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = titles.Create(ctx, root, models.TitleInput{Name: "X", Year: intPtr(now.Year() + 1), Genre: []string{"drama"}})
	assert.Contains(t, fieldsOf(t, err), "year")

	title, err := titles.Create(ctx, root, models.TitleInput{Name: "X", Year: intPtr(2000), Genre: []string{"drama"}})
	require.NoError(t, err)
	assert.Nil(t, title.Rating)

	review, err := reviews.Create(ctx, bob, title.ID, models.ReviewInput{Text: "great", Score: 8})
	require.NoError(t, err)

	_, err = reviews.Create(ctx, bob, title.ID, models.ReviewInput{Text: "again", Score: 1})
	assert.Contains(t, fieldsOf(t, err), apperrors.NonFieldErrors)

	got, err := titles.Get(ctx, title.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 8.0, *got.Rating)

	score := 6
	_, err = reviews.Update(ctx, bob, title.ID, review.ID, models.ReviewPatch{Score: &score})
	require.NoError(t, err)

	ann := &models.UserDB{ID: store.id(), Username: "ann", Role: models.RoleUser}
	_, err = reviews.Create(ctx, ann, title.ID, models.ReviewInput{Text: "meh", Score: 2})
	require.NoError(t, err)

	got, err = titles.Get(ctx, title.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, *got.Rating)
}
