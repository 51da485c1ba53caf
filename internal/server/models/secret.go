package models

import "time"

// Secret is a stored record as persisted: value and optional notes are held
// only as ciphertext with their own nonce and tag.
type Secret struct {
	ID     string
	UserID string
	Name   string

	ValueCiphertext []byte
	ValueNonce      []byte
	ValueTag        []byte

	// Notes fields are all nil when the record has no notes.
	NotesCiphertext []byte
	NotesNonce      []byte
	NotesTag        []byte

	Category  *string
	URL       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasNotes reports whether encrypted notes are stored.
func (s *Secret) HasNotes() bool {
	return s.NotesCiphertext != nil
}

// SecretInput is the plaintext payload of a create request.
type SecretInput struct {
	Name     string
	Value    string
	Notes    *string
	Category *string
	URL      *string
}

// SecretPatch is a partial update. Nil fields are left unchanged.
type SecretPatch struct {
	Name     *string
	Value    *string
	Notes    *string
	Category *string
	URL      *string
}

// Empty reports whether the patch changes nothing.
func (p *SecretPatch) Empty() bool {
	return p.Name == nil && p.Value == nil && p.Notes == nil && p.Category == nil && p.URL == nil
}

// SecretFilter narrows a listing. Empty fields do not filter.
type SecretFilter struct {
	Category string
	Search   string
}

// SecretSummary is the listing view of a record. It never carries the value
// or the notes.
type SecretSummary struct {
	ID        string
	Name      string
	Category  *string
	URL       *string
	HasNotes  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SecretDetails is a decrypted record returned to its owner.
type SecretDetails struct {
	ID        string
	Name      string
	Value     string
	Notes     *string
	Category  *string
	URL       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SealedField is the encrypted form of one field as written to storage.
type SealedField struct {
	Ciphertext []byte
	Nonce      []byte
	Tag        []byte
}

// SecretUpdate is a storage-level partial update. Nil fields are left
// unchanged; ClearNotes removes stored notes. An empty Category or URL
// clears that field.
type SecretUpdate struct {
	Name       *string
	Value      *SealedField
	Notes      *SealedField
	ClearNotes bool
	Category   *string
	URL        *string
}
