package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Cipher seals and opens field values under the master key.
type Cipher interface {
	Available() bool
	Encrypt(plaintext []byte) (*cryptox.Sealed, error)
	Decrypt(s *cryptox.Sealed) ([]byte, error)
}

// SecretService stores and reveals secrets on behalf of their owner. Every
// operation is scoped to the identity it is given; a record owned by anyone
// else is reported as common.ErrNotFound.
type SecretService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cipher      Cipher
	audit       audit.Sink
	logger      logging.Logger
	now         func() time.Time
	newID       func() string
}

func NewSecretService(db *sql.DB, m repomanager.RepositoryManager, cipher Cipher,
	sink audit.Sink, logger logging.Logger) *SecretService {
	return &SecretService{
		db:          db,
		repomanager: m,
		cipher:      cipher,
		audit:       sink,
		logger:      logger.With("module", "secrets"),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

// Create encrypts and stores a new record owned by id and returns its ID.
func (s *SecretService) Create(ctx context.Context, id *auth.Identity, in models.SecretInput) (string, error) {
	if err := validateInput(&in); err != nil {
		s.record(ctx, audit.SecretCreated, id, "", err)
		return "", err
	}

	recordID := s.newID()
	secret, err := s.seal(recordID, id.UserID, in)
	if err != nil {
		s.record(ctx, audit.SecretCreated, id, recordID, err)
		return "", s.internal(ctx, "failed to encrypt secret", err)
	}

	if err := s.repomanager.Secrets(s.db).Create(ctx, secret); err != nil {
		s.record(ctx, audit.SecretCreated, id, recordID, err)
		return "", s.internal(ctx, "error creating secret", err)
	}

	s.record(ctx, audit.SecretCreated, id, recordID, nil)
	s.logger.Info(ctx, "Secret created", "user_id", id.UserID, "secret_id", recordID)
	return recordID, nil
}

// List returns metadata for the caller's records.
func (s *SecretService) List(ctx context.Context, id *auth.Identity, filter models.SecretFilter) ([]*models.SecretSummary, error) {
	items, err := s.repomanager.Secrets(s.db).List(ctx, id.UserID, filter)
	if err != nil {
		return nil, s.internal(ctx, "error listing secrets", err)
	}
	return items, nil
}

// Get returns the decrypted record. A tag mismatch on either the value or
// the notes yields common.ErrAuthenticationFailed and no plaintext.
func (s *SecretService) Get(ctx context.Context, id *auth.Identity, recordID string) (*models.SecretDetails, error) {
	if err := validateID(recordID); err != nil {
		s.record(ctx, audit.SecretRead, id, recordID, err)
		return nil, err
	}
	if !s.cipher.Available() {
		s.record(ctx, audit.SecretRead, id, recordID, common.ErrKeyUnavailable)
		return nil, s.internal(ctx, "master key unavailable", common.ErrKeyUnavailable)
	}

	secret, err := s.repomanager.Secrets(s.db).Get(ctx, id.UserID, recordID)
	if err != nil {
		s.record(ctx, audit.SecretRead, id, recordID, err)
		return nil, s.internal(ctx, "error loading secret", err)
	}

	details, err := s.open(secret)
	if err != nil {
		event := audit.SecretRead
		if common.KindOf(err) == common.KindAuthenticationFailed {
			event = audit.SecretDecryptFailed
		}
		s.record(ctx, event, id, recordID, err)
		s.logger.Error(ctx, "failed to decrypt secret", "user_id", id.UserID, "secret_id", recordID, "error", err.Error())
		return nil, err
	}

	s.record(ctx, audit.SecretRead, id, recordID, nil)
	return details, nil
}

// Update applies patch to the caller's record. A new value or new notes are
// re-encrypted under a fresh nonce; other fields change independently. An
// empty notes string removes the notes.
func (s *SecretService) Update(ctx context.Context, id *auth.Identity, recordID string, patch models.SecretPatch) error {
	if err := validateID(recordID); err != nil {
		s.record(ctx, audit.SecretUpdated, id, recordID, err)
		return err
	}
	if err := validatePatch(&patch); err != nil {
		s.record(ctx, audit.SecretUpdated, id, recordID, err)
		return err
	}

	upd := &models.SecretUpdate{Name: patch.Name, Category: patch.Category, URL: patch.URL}

	if patch.Value != nil {
		sealed, err := s.cipher.Encrypt([]byte(*patch.Value))
		if err != nil {
			s.record(ctx, audit.SecretUpdated, id, recordID, err)
			return s.internal(ctx, "failed to encrypt secret", err)
		}
		upd.Value = toField(sealed)
	}
	if patch.Notes != nil {
		if *patch.Notes == "" {
			upd.ClearNotes = true
		} else {
			sealed, err := s.cipher.Encrypt([]byte(*patch.Notes))
			if err != nil {
				s.record(ctx, audit.SecretUpdated, id, recordID, err)
				return s.internal(ctx, "failed to encrypt notes", err)
			}
			upd.Notes = toField(sealed)
		}
	}

	if err := s.repomanager.Secrets(s.db).Update(ctx, id.UserID, recordID, upd); err != nil {
		s.record(ctx, audit.SecretUpdated, id, recordID, err)
		return s.internal(ctx, "error updating secret", err)
	}

	s.record(ctx, audit.SecretUpdated, id, recordID, nil)
	return nil
}

// Delete permanently removes the caller's record.
func (s *SecretService) Delete(ctx context.Context, id *auth.Identity, recordID string) error {
	if err := validateID(recordID); err != nil {
		s.record(ctx, audit.SecretDeleted, id, recordID, err)
		return err
	}

	if err := s.repomanager.Secrets(s.db).Delete(ctx, id.UserID, recordID); err != nil {
		s.record(ctx, audit.SecretDeleted, id, recordID, err)
		return s.internal(ctx, "error deleting secret", err)
	}

	s.record(ctx, audit.SecretDeleted, id, recordID, nil)
	return nil
}

func (s *SecretService) seal(recordID, userID string, in models.SecretInput) (*models.Secret, error) {
	value, err := s.cipher.Encrypt([]byte(in.Value))
	if err != nil {
		return nil, err
	}

	secret := &models.Secret{
		ID:              recordID,
		UserID:          userID,
		Name:            in.Name,
		ValueCiphertext: value.Ciphertext,
		ValueNonce:      value.Nonce,
		ValueTag:        value.Tag,
		Category:        in.Category,
		URL:             in.URL,
	}

	if in.Notes != nil && *in.Notes != "" {
		notes, err := s.cipher.Encrypt([]byte(*in.Notes))
		if err != nil {
			return nil, err
		}
		secret.NotesCiphertext = notes.Ciphertext
		secret.NotesNonce = notes.Nonce
		secret.NotesTag = notes.Tag
	}
	return secret, nil
}

func (s *SecretService) open(secret *models.Secret) (*models.SecretDetails, error) {
	value, err := s.cipher.Decrypt(&cryptox.Sealed{
		Ciphertext: secret.ValueCiphertext,
		Nonce:      secret.ValueNonce,
		Tag:        secret.ValueTag,
	})
	if err != nil {
		return nil, err
	}

	details := &models.SecretDetails{
		ID:        secret.ID,
		Name:      secret.Name,
		Value:     string(value),
		Category:  secret.Category,
		URL:       secret.URL,
		CreatedAt: secret.CreatedAt,
		UpdatedAt: secret.UpdatedAt,
	}

	if secret.HasNotes() {
		notes, err := s.cipher.Decrypt(&cryptox.Sealed{
			Ciphertext: secret.NotesCiphertext,
			Nonce:      secret.NotesNonce,
			Tag:        secret.NotesTag,
		})
		if err != nil {
			return nil, err
		}
		n := string(notes)
		details.Notes = &n
	}
	return details, nil
}

// internal logs errors that carry no domain kind and returns err unchanged.
func (s *SecretService) internal(ctx context.Context, msg string, err error) error {
	switch common.KindOf(err) {
	case common.KindInternal, common.KindKeyUnavailable:
		s.logger.Error(ctx, msg, "error", err.Error())
	}
	return err
}

func (s *SecretService) record(ctx context.Context, event string, id *auth.Identity, recordID string, err error) {
	e := audit.Event{
		Event:     event,
		Actor:     id.UserID,
		Username:  id.Username,
		RecordID:  recordID,
		Outcome:   audit.OutcomeSuccess,
		Peer:      audit.PeerFromContext(ctx),
		Timestamp: s.now().UTC(),
	}
	if err != nil {
		e.Outcome = audit.OutcomeFailure
		e.Reason = common.KindOf(err).String()
	}
	s.audit.Record(ctx, e)
}

func toField(s *cryptox.Sealed) *models.SealedField {
	return &models.SealedField{Ciphertext: s.Ciphertext, Nonce: s.Nonce, Tag: s.Tag}
}
