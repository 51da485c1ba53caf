// Package secrets provides the PostgreSQL-backed store for encrypted secret
// records.
package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

// PostgresRepository implements secret storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts secret and fills in CreatedAt and UpdatedAt. The caller
// assigns the ID. Empty category and URL are stored as NULL.
func (r *PostgresRepository) Create(ctx context.Context, s *models.Secret) error {
	query := `
		INSERT INTO secrets (id, user_id, name,
			value_ciphertext, value_nonce, value_tag,
			notes_ciphertext, notes_nonce, notes_tag,
			category, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''))
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		s.ID, s.UserID, s.Name,
		s.ValueCiphertext, s.ValueNonce, s.ValueTag,
		s.NotesCiphertext, s.NotesNonce, s.NotesTag,
		s.Category, s.URL,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.Wrap(common.ErrAlreadyExists, err)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns metadata for userID's records, newest first. Search matches
// the name or the category case-insensitively. It never reads the value or
// notes columns.
func (r *PostgresRepository) List(ctx context.Context, userID string, filter models.SecretFilter) ([]*models.SecretSummary, error) {
	query := `
		SELECT id, name, category, url, notes_ciphertext IS NOT NULL, created_at, updated_at
		FROM secrets
		WHERE user_id = $1
			AND ($2 = '' OR category = $2)
			AND ($3 = '' OR name ILIKE '%' || $3 || '%' OR category ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, filter.Category, escapeLike(filter.Search))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.SecretSummary{}
	for rows.Next() {
		var (
			item          models.SecretSummary
			category, url sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &category, &url, &item.HasNotes, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		item.Category = nullString(category)
		item.URL = nullString(url)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Get returns the full stored record, or common.ErrNotFound when it does not
// exist or is not owned by userID.
func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Secret, error) {
	query := `
		SELECT id, user_id, name,
			value_ciphertext, value_nonce, value_tag,
			notes_ciphertext, notes_nonce, notes_tag,
			category, url, created_at, updated_at
		FROM secrets
		WHERE id = $1 AND user_id = $2
	`
	var (
		s             models.Secret
		category, url sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.Name,
		&s.ValueCiphertext, &s.ValueNonce, &s.ValueTag,
		&s.NotesCiphertext, &s.NotesNonce, &s.NotesTag,
		&category, &url, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	s.Category = nullString(category)
	s.URL = nullString(url)
	return &s, nil
}

// Update applies upd with a single statement. Value and notes columns are
// written as a unit. Returns common.ErrNotFound when no owned row matched.
func (r *PostgresRepository) Update(ctx context.Context, userID, id string, upd *models.SecretUpdate) error {
	query := `
		UPDATE secrets SET
			name             = COALESCE($3, name),
			value_ciphertext = COALESCE($4, value_ciphertext),
			value_nonce      = COALESCE($5, value_nonce),
			value_tag        = COALESCE($6, value_tag),
			notes_ciphertext = CASE WHEN $10 THEN NULL ELSE COALESCE($7, notes_ciphertext) END,
			notes_nonce      = CASE WHEN $10 THEN NULL ELSE COALESCE($8, notes_nonce) END,
			notes_tag        = CASE WHEN $10 THEN NULL ELSE COALESCE($9, notes_tag) END,
			category         = NULLIF(COALESCE($11, category), ''),
			url              = NULLIF(COALESCE($12, url), ''),
			updated_at       = NOW()
		WHERE id = $1 AND user_id = $2
	`
	var vc, vn, vt, nc, nn, nt []byte
	if upd.Value != nil {
		vc, vn, vt = upd.Value.Ciphertext, upd.Value.Nonce, upd.Value.Tag
	}
	if upd.Notes != nil {
		nc, nn, nt = upd.Notes.Ciphertext, upd.Notes.Nonce, upd.Notes.Tag
	}

	res, err := r.db.ExecContext(ctx, query,
		id, userID, upd.Name,
		vc, vn, vt,
		nc, nn, nt,
		upd.ClearNotes,
		upd.Category, upd.URL,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

// Delete removes the record. Returns common.ErrNotFound when no owned row
// matched.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM secrets WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
