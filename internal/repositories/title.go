package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/yamdb/internal/models"
)

const titleSelect = `
	SELECT t.id, t.name, t.year, t.description, t.category_id,
	       c.name AS category_name, c.slug AS category_slug
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id
`

const titleFilter = `
	WHERE ($1::TEXT = '' OR t.name = $1)
	  AND ($2::TEXT = '' OR c.slug = $2)
	  AND ($3::TEXT = '' OR EXISTS (
	        SELECT 1 FROM title_genres tg
	        JOIN genres g ON g.id = tg.genre_id
	        WHERE tg.title_id = t.id AND g.slug = $3))
	  AND ($4::INT IS NULL OR t.year = $4)
`

// TitleRepository stores titles and their genre links.
type TitleRepository struct {
	base
}

// NewTitleRepository creates a TitleRepository.
func NewTitleRepository(db *sqlx.DB, txGetter TxGetter) *TitleRepository {
	return &TitleRepository{base{db: db, txGetter: txGetter}}
}

// List returns one page of titles matching filter, ordered by id.
func (r *TitleRepository) List(ctx context.Context, filter models.TitleFilter, page models.PageRequest) ([]models.TitleDB, int, error) {
	countQuery := `SELECT COUNT(*) FROM titles t LEFT JOIN categories c ON c.id = t.category_id` + titleFilter
	listQuery := titleSelect + titleFilter + ` ORDER BY t.id LIMIT $5 OFFSET $6`

	args := []any{filter.Name, filter.Category, filter.Genre, filter.Year}
	exec := r.executor(ctx)

	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery, args...)
	logQuery(ctx, countQuery, args, total, err)
	if err != nil {
		return nil, 0, err
	}

	titles := []models.TitleDB{}
	listArgs := append(args, page.Size, page.Offset())
	err = sqlx.SelectContext(ctx, exec, &titles, listQuery, listArgs...)
	logQuery(ctx, listQuery, listArgs, len(titles), err)
	if err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

// Get returns the title with id, or nil if absent.
func (r *TitleRepository) Get(ctx context.Context, id int64) (*models.TitleDB, error) {
	query := titleSelect + ` WHERE t.id = $1`

	var title models.TitleDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &title, query, id)
	logQuery(ctx, query, []any{id}, title.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &title, nil
}

// Create inserts title, fills its id and links it to genreIDs.
func (r *TitleRepository) Create(ctx context.Context, title *models.TitleDB, genreIDs []int64) error {
	const query = `
		INSERT INTO titles (name, year, description, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{title.Name, title.Year, title.Description, title.CategoryID}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&title.ID)
	logQuery(ctx, query, args, title.ID, err)
	if err != nil {
		return translate(err)
	}

	return r.linkGenres(ctx, title.ID, genreIDs)
}

// Update writes title's columns. A nil genreIDs keeps the current genre links.
func (r *TitleRepository) Update(ctx context.Context, title *models.TitleDB, genreIDs []int64) error {
	const query = `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5
		WHERE id = $1
	`
	args := []any{title.ID, title.Name, title.Year, title.Description, title.CategoryID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	logQuery(ctx, query, args, nil, err)
	if err := affected(res, err); err != nil {
		return err
	}

	if genreIDs == nil {
		return nil
	}

	const unlink = `DELETE FROM title_genres WHERE title_id = $1`
	_, err = r.executor(ctx).ExecContext(ctx, unlink, title.ID)
	logQuery(ctx, unlink, []any{title.ID}, nil, err)
	if err != nil {
		return err
	}

	return r.linkGenres(ctx, title.ID, genreIDs)
}

func (r *TitleRepository) linkGenres(ctx context.Context, titleID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	const query = `
		INSERT INTO title_genres (title_id, genre_id)
		SELECT $1, UNNEST($2::BIGINT[])
		ON CONFLICT DO NOTHING
	`
	_, err := r.executor(ctx).ExecContext(ctx, query, titleID, genreIDs)
	logQuery(ctx, query, []any{titleID, genreIDs}, nil, err)

	return translate(err)
}

// Delete removes the title with id together with its reviews and comments.
func (r *TitleRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM titles WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	logQuery(ctx, query, []any{id}, nil, err)

	return affected(res, err)
}

// GenresByTitleIDs returns the genres linked to each of ids, ordered by genre id.
func (r *TitleRepository) GenresByTitleIDs(ctx context.Context, ids []int64) (map[int64][]models.Taxon, error) {
	out := make(map[int64][]models.Taxon, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	const query = `
		SELECT tg.title_id, g.id, g.name, g.slug
		FROM title_genres tg
		JOIN genres g ON g.id = tg.genre_id
		WHERE tg.title_id = ANY($1)
		ORDER BY g.id
	`
	var rows []struct {
		TitleID int64 `db:"title_id"`
		models.Taxon
	}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, ids)
	logQuery(ctx, query, []any{ids}, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.TitleID] = append(out[row.TitleID], row.Taxon)
	}
	return out, nil
}
