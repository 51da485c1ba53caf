package services

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/google/uuid"
)

const (
	usernameMin = 3
	usernameMax = 50
	passwordMin = 8
	passwordMax = 128

	nameMax     = 255
	valueMax    = 10000
	notesMax    = 1000
	categoryMax = 100
	urlMax      = 2048
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// violations accumulates field errors.
type violations []common.FieldViolation

func (v *violations) add(field, desc string) {
	*v = append(*v, common.FieldViolation{Field: field, Description: desc})
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return common.NewValidationError(v...)
}

func validateUsername(v *violations, username string) {
	n := utf8.RuneCountInString(username)
	switch {
	case n < usernameMin || n > usernameMax:
		v.add("username", "must be between 3 and 50 characters")
	case !usernamePattern.MatchString(username):
		v.add("username", "may only contain letters, numbers, underscores and hyphens")
	}
}

func validatePassword(v *violations, field, password string) {
	n := utf8.RuneCountInString(password)
	if n < passwordMin || n > passwordMax {
		v.add(field, "must be between 8 and 128 characters")
		return
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		v.add(field, "must contain at least one lowercase letter, one uppercase letter and one number")
	}
}

func validateName(v *violations, name string) {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > nameMax {
		v.add("name", "must be between 1 and 255 characters")
	}
}

func validateValue(v *violations, value string) {
	switch {
	case value == "":
		v.add("value", "is required")
	case utf8.RuneCountInString(value) > valueMax:
		v.add("value", "must not exceed 10000 characters")
	}
}

func validateOptional(v *violations, field string, s *string, max int) {
	if s != nil && utf8.RuneCountInString(*s) > max {
		v.add(field, "is too long")
	}
}

// validateURL accepts an absolute URL with a scheme and a host. The empty
// string is allowed and means no URL.
func validateURL(v *violations, s *string) {
	if s == nil || *s == "" {
		return
	}
	if utf8.RuneCountInString(*s) > urlMax {
		v.add("url", "is too long")
		return
	}
	u, err := url.ParseRequestURI(*s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		v.add("url", "must be a valid URL")
	}
}

func validateInput(in *models.SecretInput) error {
	var v violations
	in.Name = strings.TrimSpace(in.Name)
	validateName(&v, in.Name)
	validateValue(&v, in.Value)
	validateOptional(&v, "notes", in.Notes, notesMax)
	validateOptional(&v, "category", in.Category, categoryMax)
	validateURL(&v, in.URL)
	return v.err()
}

func validatePatch(p *models.SecretPatch) error {
	if p.Empty() {
		return common.NewValidationError(common.FieldViolation{Field: "patch", Description: "must change at least one field"})
	}

	var v violations
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		p.Name = &name
		validateName(&v, name)
	}
	if p.Value != nil {
		validateValue(&v, *p.Value)
	}
	validateOptional(&v, "notes", p.Notes, notesMax)
	validateOptional(&v, "category", p.Category, categoryMax)
	validateURL(&v, p.URL)
	return v.err()
}

// validateID rejects ids that cannot name any record, before storage is
// touched.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.NewValidationError(common.FieldViolation{Field: "id", Description: "must be a valid UUID"})
	}
	return nil
}
