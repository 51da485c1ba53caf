package secrets

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	insertQ = `(?s)INSERT\s+INTO\s+secrets\s*\(id,\s*user_id,\s*name,.*RETURNING\s+created_at,\s*updated_at`
	listQ   = `(?s)SELECT\s+id,\s*name,\s*category,\s*url,\s*notes_ciphertext\s+IS\s+NOT\s+NULL,\s*created_at,\s*updated_at\s+FROM\s+secrets\s+WHERE\s+user_id\s*=\s*\$1`
	getQ    = `(?s)SELECT\s+id,\s*user_id,\s*name,.*FROM\s+secrets\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`
	updateQ = `(?s)UPDATE\s+secrets\s+SET.*WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`
	deleteQ = `(?s)DELETE\s+FROM\s+secrets\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`
)

func strPtr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &models.Secret{
		ID: "s-1", UserID: "u-1", Name: "GitHub",
		ValueCiphertext: []byte("ct"), ValueNonce: []byte("nonce"), ValueTag: []byte("tag"),
		Category: strPtr("dev"),
	}

	mock.ExpectQuery(insertQ).
		WithArgs("s-1", "u-1", "GitHub", []byte("ct"), []byte("nonce"), []byte("tag"),
			[]byte(nil), []byte(nil), []byte(nil), "dev", nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.True(t, s.CreatedAt.Equal(now))
	assert.True(t, s.UpdatedAt.Equal(now))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Errors(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).WillReturnError(&pgconn.PgError{Code: "23505"})
	err := repo.Create(context.Background(), &models.Secret{ID: "s-1"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))
	err = repo.Create(context.Background(), &models.Secret{ID: "s-1"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestList_ReturnsMetadataOnly(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "category", "url", "has_notes", "created_at", "updated_at"}).
		AddRow("s-2", "GitHub", "dev", "https://github.com", true, now, now).
		AddRow("s-1", "Bank", nil, nil, false, now, now)

	mock.ExpectQuery(listQ).
		WithArgs("u-1", "", "").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "u-1", models.SecretFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "GitHub", got[0].Name)
	assert.Equal(t, "dev", *got[0].Category)
	assert.True(t, got[0].HasNotes)
	assert.Nil(t, got[1].Category)
	assert.Nil(t, got[1].URL)
	assert.False(t, got[1].HasNotes)
}

func TestList_QueryNeverReadsSecretColumns(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQ).
		WithArgs("u-1", "dev", "git").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "url", "has_notes", "created_at", "updated_at"}))

	got, err := repo.List(context.Background(), "u-1", models.SecretFilter{Category: "dev", Search: "git"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	for _, col := range []string{"value_ciphertext", "value_nonce", "value_tag", "notes_nonce", "notes_tag"} {
		assert.NotContains(t, listQuery(t), col)
	}
}

// listQuery exposes the SQL text by capturing it through a recording DBTX.
func listQuery(t *testing.T) string {
	t.Helper()
	rec := &recordingDB{}
	_, _ = NewPostgresRepository(rec).List(context.Background(), "u", models.SecretFilter{})
	return rec.query
}

type recordingDB struct {
	query string
}

func (r *recordingDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	r.query = query
	return nil, errors.New("recording")
}

func (r *recordingDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	r.query = query
	return nil, errors.New("recording")
}

func (r *recordingDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	r.query = query
	return nil
}

func TestList_SearchMatchesNameOrCategory(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(listQ+`.*name\s+ILIKE\s+'%'\s*\|\|\s*\$3.*OR\s+category\s+ILIKE\s+'%'\s*\|\|\s*\$3`).
		WithArgs("u-1", "", "fin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "url", "has_notes", "created_at", "updated_at"}).
			AddRow("s-1", "Bank", "finance", nil, false, now, now))

	got, err := repo.List(context.Background(), "u-1", models.SecretFilter{Search: "fin"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bank", got[0].Name)
	assert.Equal(t, "finance", *got[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EscapesLikeWildcards(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQ).
		WithArgs("u-1", "", `100\%\_off\\`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "url", "has_notes", "created_at", "updated_at"}))

	_, err := repo.List(context.Background(), "u-1", models.SecretFilter{Search: `100%_off\`})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name",
		"value_ciphertext", "value_nonce", "value_tag",
		"notes_ciphertext", "notes_nonce", "notes_tag",
		"category", "url", "created_at", "updated_at"}).
		AddRow("s-1", "u-1", "GitHub", []byte("ct"), []byte("n"), []byte("t"), nil, nil, nil, nil, "https://github.com", now, now)

	mock.ExpectQuery(getQ).WithArgs("s-1", "u-1").WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "u-1", "s-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("ct"), got.ValueCiphertext)
	assert.False(t, got.HasNotes())
	assert.Nil(t, got.Category)
	assert.Equal(t, "https://github.com", *got.URL)
}

func TestGet_NotOwnedIsNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(getQ).WithArgs("s-1", "u-2").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "u-2", "s-1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		upd      *models.SecretUpdate
		args     []driver.Value
		affected int64
		wantErr  error
	}{
		{
			name: "value only",
			upd:  &models.SecretUpdate{Value: &models.SealedField{Ciphertext: []byte("c"), Nonce: []byte("n"), Tag: []byte("t")}},
			args: []driver.Value{"s-1", "u-1", nil, []byte("c"), []byte("n"), []byte("t"),
				[]byte(nil), []byte(nil), []byte(nil), false, nil, nil},
			affected: 1,
		},
		{
			name: "clear notes and rename",
			upd:  &models.SecretUpdate{Name: strPtr("Work GitHub"), ClearNotes: true},
			args: []driver.Value{"s-1", "u-1", "Work GitHub", []byte(nil), []byte(nil), []byte(nil),
				[]byte(nil), []byte(nil), []byte(nil), true, nil, nil},
			affected: 1,
		},
		{
			name: "not owned",
			upd:  &models.SecretUpdate{Category: strPtr("x")},
			args: []driver.Value{"s-1", "u-1", nil, []byte(nil), []byte(nil), []byte(nil),
				[]byte(nil), []byte(nil), []byte(nil), false, "x", nil},
			affected: 0,
			wantErr:  common.ErrNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			mock.ExpectExec(updateQ).WithArgs(tc.args...).WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err := repo.Update(context.Background(), "u-1", "s-1", tc.upd)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdate_IsOneFixedStatement(t *testing.T) {
	rec := &recordingDB{}
	_ = NewPostgresRepository(rec).Update(context.Background(), "u", "s", &models.SecretUpdate{})
	first := rec.query

	_ = NewPostgresRepository(rec).Update(context.Background(), "u", "s", &models.SecretUpdate{
		Name: strPtr("n"), Category: strPtr("c"), URL: strPtr("u"),
	})
	assert.Equal(t, first, rec.query)
	assert.True(t, strings.Contains(first, "COALESCE"))
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(deleteQ).WithArgs("s-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "u-1", "s-1"))

	mock.ExpectExec(deleteQ).WithArgs("s-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "u-1", "s-1"), common.ErrNotFound)

	mock.ExpectExec(deleteQ).WithArgs("s-1", "u-1").WillReturnError(errors.New("db down"))
	err := repo.Delete(context.Background(), "u-1", "s-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}
