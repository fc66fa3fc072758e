package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/yamdb/internal/models"
)

const reviewSelect = `
	SELECT r.id, r.title_id, r.author_id, u.username AS author, r.text, r.score, r.pub_date
	FROM reviews r
	JOIN users u ON u.id = r.author_id
`

// ReviewRepository stores reviews.
type ReviewRepository struct {
	base
}

// NewReviewRepository creates a ReviewRepository.
func NewReviewRepository(db *sqlx.DB, txGetter TxGetter) *ReviewRepository {
	return &ReviewRepository{base{db: db, txGetter: txGetter}}
}

// ListByTitle returns the reviews of a title ordered by id.
func (r *ReviewRepository) ListByTitle(ctx context.Context, titleID int64) ([]models.ReviewDB, error) {
	query := reviewSelect + ` WHERE r.title_id = $1 ORDER BY r.id`

	reviews := []models.ReviewDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &reviews, query, titleID)
	logQuery(ctx, query, []any{titleID}, len(reviews), err)

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Get returns review id of a title, or nil if absent.
func (r *ReviewRepository) Get(ctx context.Context, titleID, id int64) (*models.ReviewDB, error) {
	query := reviewSelect + ` WHERE r.title_id = $1 AND r.id = $2`

	var review models.ReviewDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &review, query, titleID, id)
	logQuery(ctx, query, []any{titleID, id}, review.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ExistsByTitleAndAuthor reports whether author already reviewed the title.
func (r *ReviewRepository) ExistsByTitleAndAuthor(ctx context.Context, titleID, authorID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE title_id = $1 AND author_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, titleID, authorID)
	logQuery(ctx, query, []any{titleID, authorID}, exists, err)

	return exists, err
}

// Create inserts review and fills its id and publication date.
func (r *ReviewRepository) Create(ctx context.Context, review *models.ReviewDB) error {
	const query = `
		INSERT INTO reviews (title_id, author_id, text, score, pub_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, pub_date
	`
	args := []any{review.TitleID, review.AuthorID, review.Text, review.Score}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&review.ID, &review.PubDate)
	logQuery(ctx, query, args, review.ID, err)

	return translate(err)
}

// Update writes the text and score of review.
func (r *ReviewRepository) Update(ctx context.Context, review *models.ReviewDB) error {
	const query = `UPDATE reviews SET text = $2, score = $3 WHERE id = $1`
	args := []any{review.ID, review.Text, review.Score}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	logQuery(ctx, query, args, nil, err)

	return affected(res, err)
}

// Delete removes review id together with its comments.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	logQuery(ctx, query, []any{id}, nil, err)

	return affected(res, err)
}

// ScoresByTitleIDs returns the review scores of each of ids.
func (r *ReviewRepository) ScoresByTitleIDs(ctx context.Context, ids []int64) (map[int64][]int, error) {
	out := make(map[int64][]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	const query = `SELECT title_id, score FROM reviews WHERE title_id = ANY($1)`

	var rows []struct {
		TitleID int64 `db:"title_id"`
		Score   int   `db:"score"`
	}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, ids)
	logQuery(ctx, query, []any{ids}, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.TitleID] = append(out[row.TitleID], row.Score)
	}
	return out, nil
}
