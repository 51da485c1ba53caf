package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/services"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var profileCreatedAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// stubUsers is a minimal account store that issues real tokens.
type stubUsers struct {
	mu     sync.Mutex
	tokens *auth.TokenService
	byName map[string]struct{ id, password string }
}

func newStubUsers(tokens *auth.TokenService) *stubUsers {
	return &stubUsers{tokens: tokens, byName: map[string]struct{ id, password string }{}}
}

func (u *stubUsers) Register(_ context.Context, username, password string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if username == "" {
		return nil, common.NewValidationError(common.FieldViolation{Field: "username", Description: "is required"})
	}
	if _, ok := u.byName[username]; ok {
		return nil, common.ErrAlreadyExists
	}
	id := uuid.NewString()
	u.byName[username] = struct{ id, password string }{id, password}
	return &models.User{ID: id, UserName: username}, nil
}

func (u *stubUsers) Login(_ context.Context, username, password string) (*services.LoginResult, error) {
	u.mu.Lock()
	rec, ok := u.byName[username]
	u.mu.Unlock()
	if !ok || rec.password != password {
		return nil, common.ErrInvalidCredentials
	}
	tok, err := u.tokens.Issue(rec.id, username)
	if err != nil {
		return nil, err
	}
	return &services.LoginResult{Token: tok, ExpiresAt: time.Now().Add(u.tokens.Validity()), UserID: rec.id, Username: username}, nil
}

func (u *stubUsers) GetProfile(_ context.Context, id *auth.Identity) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	rec, ok := u.byName[id.Username]
	if !ok || rec.id != id.UserID {
		return nil, common.ErrUnauthenticated
	}
	return &models.User{ID: rec.id, UserName: id.Username, CreatedAt: profileCreatedAt}, nil
}

func (u *stubUsers) ChangePassword(_ context.Context, id *auth.Identity, oldPassword, newPassword string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	rec, ok := u.byName[id.Username]
	if !ok || rec.password != oldPassword {
		return common.ErrInvalidCredentials
	}
	rec.password = newPassword
	u.byName[id.Username] = rec
	return nil
}

// stubSecrets keeps plaintext records per owner and can be told to fail.
type stubSecrets struct {
	mu      sync.Mutex
	records map[string]*models.SecretDetails
	owners  map[string]string
	fail    error
	lastID  *auth.Identity
}

func newStubSecrets() *stubSecrets {
	return &stubSecrets{records: map[string]*models.SecretDetails{}, owners: map[string]string{}}
}

func (s *stubSecrets) Create(_ context.Context, id *auth.Identity, in models.SecretInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID = id
	if s.fail != nil {
		return "", s.fail
	}
	recordID := uuid.NewString()
	now := time.Now().UTC()
	s.records[recordID] = &models.SecretDetails{
		ID: recordID, Name: in.Name, Value: in.Value, Notes: in.Notes,
		Category: in.Category, URL: in.URL, CreatedAt: now, UpdatedAt: now,
	}
	s.owners[recordID] = id.UserID
	return recordID, nil
}

func (s *stubSecrets) List(_ context.Context, id *auth.Identity, _ models.SecretFilter) ([]*models.SecretSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID = id
	if s.fail != nil {
		return nil, s.fail
	}
	var out []*models.SecretSummary
	for rid, d := range s.records {
		if s.owners[rid] != id.UserID {
			continue
		}
		out = append(out, &models.SecretSummary{
			ID: d.ID, Name: d.Name, Category: d.Category, URL: d.URL,
			HasNotes: d.Notes != nil, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		})
	}
	return out, nil
}

func (s *stubSecrets) Get(_ context.Context, id *auth.Identity, recordID string) (*models.SecretDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID = id
	if s.fail != nil {
		return nil, s.fail
	}
	d, ok := s.records[recordID]
	if !ok || s.owners[recordID] != id.UserID {
		return nil, common.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *stubSecrets) Update(_ context.Context, id *auth.Identity, recordID string, patch models.SecretPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID = id
	if s.fail != nil {
		return s.fail
	}
	d, ok := s.records[recordID]
	if !ok || s.owners[recordID] != id.UserID {
		return common.ErrNotFound
	}
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Value != nil {
		d.Value = *patch.Value
	}
	return nil
}

func (s *stubSecrets) Delete(_ context.Context, id *auth.Identity, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID = id
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.records[recordID]; !ok || s.owners[recordID] != id.UserID {
		return common.ErrNotFound
	}
	delete(s.records, recordID)
	delete(s.owners, recordID)
	return nil
}

func strPtr(s string) *string { return &s }

func (s *stubSecrets) failWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *stubSecrets) caller() *auth.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastID
}
