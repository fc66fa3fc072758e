package middlewares

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSqlxMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware_Settles(t *testing.T) {
	tests := []struct {
		name   string
		status int
		commit bool
	}{
		{name: "created commits", status: http.StatusCreated, commit: true},
		{name: "no content commits", status: http.StatusNoContent, commit: true},
		{name: "validation error rolls back", status: http.StatusBadRequest},
		{name: "forbidden rolls back", status: http.StatusForbidden},
		{name: "server error rolls back", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSqlxMock(t)
			mock.ExpectBegin()
			if tt.commit {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotNil(t, GetTxFromContext(r.Context()))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"ok":true}`))
			})

			rr := httptest.NewRecorder()
			TxMiddleware(db)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

			assert.Equal(t, tt.status, rr.Code)
			if tt.status != http.StatusNoContent {
				assert.Equal(t, `{"ok":true}`, rr.Body.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxMiddleware_BeginError(t *testing.T) {
	db, mock := newSqlxMock(t)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	TxMiddleware(db)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTxMiddleware_CommitErrorHidesResponse(t *testing.T) {
	db, mock := newSqlxMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	})

	rr := httptest.NewRecorder()
	TxMiddleware(db)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_Panic(t *testing.T) {
	db, mock := newSqlxMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		TxMiddleware(db)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOnCommit(t *testing.T) {
	tests := []struct {
		name   string
		status int
		commit bool
	}{
		{name: "runs after commit", status: http.StatusOK, commit: true},
		{name: "dropped on rollback", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSqlxMock(t)
			mock.ExpectBegin()
			if tt.commit {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			ran := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				OnCommit(r.Context(), func() { ran = true })
				assert.False(t, ran)
				w.WriteHeader(tt.status)
			})

			rr := httptest.NewRecorder()
			TxMiddleware(db)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

			assert.Equal(t, tt.commit, ran)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("dropped when commit fails", func(t *testing.T) {
		db, mock := newSqlxMock(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

		ran := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			OnCommit(r.Context(), func() { ran = true })
		})

		TxMiddleware(db)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.False(t, ran)
	})

	t.Run("runs at once without a transaction", func(t *testing.T) {
		ran := false
		OnCommit(context.Background(), func() { ran = true })
		assert.True(t, ran)
	})
}
