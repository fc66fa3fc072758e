package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/yamdb/internal/models"
)

const commentSelect = `
	SELECT c.id, c.review_id, c.author_id, u.username AS author, c.text, c.pub_date
	FROM comments c
	JOIN users u ON u.id = c.author_id
`

// CommentRepository stores comments.
type CommentRepository struct {
	base
}

// NewCommentRepository creates a CommentRepository.
func NewCommentRepository(db *sqlx.DB, txGetter TxGetter) *CommentRepository {
	return &CommentRepository{base{db: db, txGetter: txGetter}}
}

// ListByReview returns the comments of a review ordered by id.
func (r *CommentRepository) ListByReview(ctx context.Context, reviewID int64) ([]models.CommentDB, error) {
	query := commentSelect + ` WHERE c.review_id = $1 ORDER BY c.id`

	comments := []models.CommentDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &comments, query, reviewID)
	logQuery(ctx, query, []any{reviewID}, len(comments), err)

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Get returns comment id of a review, or nil if absent.
func (r *CommentRepository) Get(ctx context.Context, reviewID, id int64) (*models.CommentDB, error) {
	query := commentSelect + ` WHERE c.review_id = $1 AND c.id = $2`

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &comment, query, reviewID, id)
	logQuery(ctx, query, []any{reviewID, id}, comment.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create inserts comment and fills its id and publication date.
func (r *CommentRepository) Create(ctx context.Context, comment *models.CommentDB) error {
	const query = `
		INSERT INTO comments (review_id, author_id, text, pub_date)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, pub_date
	`
	args := []any{comment.ReviewID, comment.AuthorID, comment.Text}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&comment.ID, &comment.PubDate)
	logQuery(ctx, query, args, comment.ID, err)

	return translate(err)
}

// Update writes the text of comment.
func (r *CommentRepository) Update(ctx context.Context, comment *models.CommentDB) error {
	const query = `UPDATE comments SET text = $2 WHERE id = $1`
	args := []any{comment.ID, comment.Text}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	logQuery(ctx, query, args, nil, err)

	return affected(res, err)
}

// Delete removes comment id.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	logQuery(ctx, query, []any{id}, nil, err)

	return affected(res, err)
}
