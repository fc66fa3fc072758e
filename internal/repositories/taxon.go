package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/yamdb/internal/models"
)

// Taxon tables
const (
	CategoriesTable = "categories"
	GenresTable     = "genres"
)

// TaxonRepository stores categories or genres, depending on its table.
type TaxonRepository struct {
	base
	table string
}

// NewCategoryRepository creates a TaxonRepository over the categories table.
func NewCategoryRepository(db *sqlx.DB, txGetter TxGetter) *TaxonRepository {
	return &TaxonRepository{base: base{db: db, txGetter: txGetter}, table: CategoriesTable}
}

// NewGenreRepository creates a TaxonRepository over the genres table.
func NewGenreRepository(db *sqlx.DB, txGetter TxGetter) *TaxonRepository {
	return &TaxonRepository{base: base{db: db, txGetter: txGetter}, table: GenresTable}
}

// List returns one page of entries whose name contains search, ordered by id.
func (r *TaxonRepository) List(ctx context.Context, search string, page models.PageRequest) ([]models.Taxon, int, error) {
	where := ` FROM ` + r.table + ` WHERE ($1::TEXT = '' OR name ILIKE $2)`
	countQuery := `SELECT COUNT(*)` + where
	listQuery := `SELECT id, name, slug` + where + ` ORDER BY id LIMIT $3 OFFSET $4`

	pattern := containsPattern(search)
	exec := r.executor(ctx)

	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery, search, pattern)
	logQuery(ctx, countQuery, []any{search}, total, err)
	if err != nil {
		return nil, 0, err
	}

	items := []models.Taxon{}
	err = sqlx.SelectContext(ctx, exec, &items, listQuery, search, pattern, page.Size, page.Offset())
	logQuery(ctx, listQuery, []any{search, page.Size, page.Offset()}, len(items), err)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetBySlug returns the entry with slug, or nil if absent.
func (r *TaxonRepository) GetBySlug(ctx context.Context, slug string) (*models.Taxon, error) {
	query := `SELECT id, name, slug FROM ` + r.table + ` WHERE slug = $1`

	var item models.Taxon
	err := sqlx.GetContext(ctx, r.executor(ctx), &item, query, slug)
	logQuery(ctx, query, []any{slug}, item, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetBySlugs returns the entries matching slugs, ordered by id. Unknown slugs are skipped.
func (r *TaxonRepository) GetBySlugs(ctx context.Context, slugs []string) ([]models.Taxon, error) {
	query := `SELECT id, name, slug FROM ` + r.table + ` WHERE slug = ANY($1) ORDER BY id`

	items := []models.Taxon{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &items, query, slugs)
	logQuery(ctx, query, []any{slugs}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts item and fills its id.
func (r *TaxonRepository) Create(ctx context.Context, item *models.Taxon) error {
	query := `INSERT INTO ` + r.table + ` (name, slug) VALUES ($1, $2) RETURNING id`

	err := r.executor(ctx).QueryRowxContext(ctx, query, item.Name, item.Slug).Scan(&item.ID)
	logQuery(ctx, query, []any{item.Name, item.Slug}, item.ID, err)

	return translate(err)
}

// Delete removes the entry with slug.
func (r *TaxonRepository) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM ` + r.table + ` WHERE slug = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, slug)
	logQuery(ctx, query, []any{slug}, nil, err)

	return affected(res, err)
}
