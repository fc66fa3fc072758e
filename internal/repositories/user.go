package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/yamdb/internal/apperrors"
	"github.com/sbilibin2017/yamdb/internal/models"
)

const userColumns = `id, username, email, first_name, last_name, bio, role,
	is_superuser, is_staff, password_hash, created_at, updated_at`

// UserRepository stores users.
type UserRepository struct {
	base
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns the user with id, or nil if absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername returns the user holding username, or nil if absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByEmail returns the user holding email, or nil if absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, arg)
	logQuery(ctx, query, []any{arg}, user.Username, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns one page of users whose username contains search, ordered by id,
// together with the total number of matches.
func (r *UserRepository) List(ctx context.Context, search string, page models.PageRequest) ([]models.UserDB, int, error) {
	const where = ` FROM users WHERE ($1::TEXT = '' OR username ILIKE $2)`
	countQuery := `SELECT COUNT(*)` + where
	listQuery := `SELECT ` + userColumns + where + ` ORDER BY id LIMIT $3 OFFSET $4`

	pattern := containsPattern(search)
	exec := r.executor(ctx)

	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery, search, pattern)
	logQuery(ctx, countQuery, []any{search}, total, err)
	if err != nil {
		return nil, 0, err
	}

	users := []models.UserDB{}
	err = sqlx.SelectContext(ctx, exec, &users, listQuery, search, pattern, page.Size, page.Offset())
	logQuery(ctx, listQuery, []any{search, page.Size, page.Offset()}, len(users), err)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Create inserts user and fills its id and timestamps.
func (r *UserRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (username, email, first_name, last_name, bio, role,
			is_superuser, is_staff, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	row := r.executor(ctx).QueryRowxContext(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName, user.Bio, user.Role,
		user.IsSuperuser, user.IsStaff, user.PasswordHash,
	)
	err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	// Password hash is not logged.
	logQuery(ctx, query, []any{user.Username, user.Email, user.Role}, user.ID, err)

	return translate(err)
}

// Update writes the mutable profile fields of user.
func (r *UserRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, last_name = $5,
		    bio = $6, role = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.Bio, user.Role}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&user.UpdatedAt)
	logQuery(ctx, query, args, user.UpdatedAt, err)

	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return translate(err)
}

// Delete removes the user holding username.
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	const query = `DELETE FROM users WHERE username = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, username)
	logQuery(ctx, query, []any{username}, nil, err)

	return affected(res, err)
}
