package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/secrets"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/users"
	"github.com/google/uuid"
)

// fakeRepoManager hands out shared in-memory repositories and counts how
// often storage was reached.
type fakeRepoManager struct {
	users   *memUsers
	secrets *memSecrets
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   &memUsers{byID: map[string]*models.User{}},
		secrets: &memSecrets{rows: map[string]*models.Secret{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Secrets(dbx.DBTX) secrets.Repository          { return m.secrets }

type memUsers struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	calls int
}

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for _, existing := range r.byID {
		if existing.UserName == u.UserName {
			return nil, common.ErrAlreadyExists
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	r.byID[u.ID] = &cp
	return u, nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for _, u := range r.byID {
		if u.UserName == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) UpdatePassword(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *memUsers) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.LastLoginAt = &at
	return nil
}

// memSecrets mirrors the owner-scoped semantics of the PostgreSQL store.
type memSecrets struct {
	mu    sync.Mutex
	rows  map[string]*models.Secret
	order []string
	calls int
}

func (r *memSecrets) Create(_ context.Context, s *models.Secret) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.rows[s.ID]; ok {
		return common.ErrAlreadyExists
	}
	now := time.Now()
	s.CreatedAt, s.UpdatedAt = now, now
	cp := *s
	r.rows[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

func (r *memSecrets) List(_ context.Context, userID string, f models.SecretFilter) ([]*models.SecretSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	out := []*models.SecretSummary{}
	for i := len(r.order) - 1; i >= 0; i-- {
		s, ok := r.rows[r.order[i]]
		if !ok || s.UserID != userID {
			continue
		}
		if f.Category != "" && (s.Category == nil || *s.Category != f.Category) {
			continue
		}
		if f.Search != "" && !matchesSearch(s, f.Search) {
			continue
		}
		out = append(out, &models.SecretSummary{
			ID: s.ID, Name: s.Name, Category: s.Category, URL: s.URL,
			HasNotes: s.HasNotes(), CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
		})
	}
	return out, nil
}

func (r *memSecrets) Get(_ context.Context, userID, id string) (*models.Secret, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	s, ok := r.rows[id]
	if !ok || s.UserID != userID {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSecrets) Update(_ context.Context, userID, id string, upd *models.SecretUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	s, ok := r.rows[id]
	if !ok || s.UserID != userID {
		return common.ErrNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Value != nil {
		s.ValueCiphertext, s.ValueNonce, s.ValueTag = upd.Value.Ciphertext, upd.Value.Nonce, upd.Value.Tag
	}
	if upd.ClearNotes {
		s.NotesCiphertext, s.NotesNonce, s.NotesTag = nil, nil, nil
	} else if upd.Notes != nil {
		s.NotesCiphertext, s.NotesNonce, s.NotesTag = upd.Notes.Ciphertext, upd.Notes.Nonce, upd.Notes.Tag
	}
	if upd.Category != nil {
		s.Category = nilIfEmpty(*upd.Category)
	}
	if upd.URL != nil {
		s.URL = nilIfEmpty(*upd.URL)
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (r *memSecrets) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	s, ok := r.rows[id]
	if !ok || s.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memSecrets) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func matchesSearch(s *models.Secret, search string) bool {
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	return s.Category != nil && strings.Contains(strings.ToLower(*s.Category), q)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type auditRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *auditRecorder) Record(_ context.Context, e audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *auditRecorder) last() audit.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.events) == 0 {
		return audit.Event{}
	}
	return a.events[len(a.events)-1]
}

func (a *auditRecorder) byEvent(name string) []audit.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []audit.Event
	for _, e := range a.events {
		if e.Event == name {
			out = append(out, e)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }
