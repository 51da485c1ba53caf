// Package services contains server-side business logic: account
// management and ownership-scoped secret storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
	Validity() time.Duration
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
	Username  string
}

// UserService provides account operations:
// - Register: create users
// - Login: verify credentials and mint a session token
// - ChangePassword: re-verify and replace the stored hash
// - GetProfile: describe the caller's account
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer
	audit       audit.Sink
	logger      logging.Logger
	now         func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher,
	tokens TokenIssuer, sink audit.Sink, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		audit:       sink,
		logger:      logger.With("module", "users"),
		now:         time.Now,
	}
}

// Register validates and creates a new account. A taken username yields
// common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var v violations
	validateUsername(&v, username)
	validatePassword(&v, "password", password)
	if err := v.err(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		s.record(ctx, audit.UserRegistered, "", username, err)
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		s.logger.Error(ctx, "error creating user", "username", username, "error", err.Error())
		return nil, err
	}

	s.record(ctx, audit.UserRegistered, user.ID, username, nil)
	s.logger.Info(ctx, "User registered", "username", username)
	return user, nil
}

// Login verifies the credentials and returns a fresh session token. An
// unknown username and a wrong password fail identically with
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		var v violations
		if username == "" {
			v.add("username", "is required")
		}
		if password == "" {
			v.add("password", "is required")
		}
		return nil, v.err()
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// compare anyway so unknown users cost the same as wrong passwords
			s.hasher.Compare(s.timingHash(), password)
			s.recordReason(ctx, audit.LoginFailed, "", username, "user_not_found")
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "error loading user", "username", username, "error", err.Error())
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.recordReason(ctx, audit.LoginFailed, user.ID, username, "invalid_password")
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.UserName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn(ctx, "failed to update last login", "user_id", user.ID, "error", err.Error())
	}

	s.record(ctx, audit.LoginSuccess, user.ID, user.UserName, nil)
	s.logger.Info(ctx, "User logged in", "username", user.UserName)

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.tokens.Validity()),
		UserID:    user.ID,
		Username:  user.UserName,
	}, nil
}

// ChangePassword replaces the caller's password after re-verifying the old
// one. Existing session tokens stay valid until they expire.
func (s *UserService) ChangePassword(ctx context.Context, id *auth.Identity, oldPassword, newPassword string) error {
	var v violations
	if oldPassword == "" {
		v.add("oldPassword", "is required")
	}
	validatePassword(&v, "newPassword", newPassword)
	if err := v.err(); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		user, err := repo.GetByID(ctx, id.UserID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrUnauthenticated
			}
			return err
		}
		if !s.hasher.Compare(user.PasswordHash, oldPassword) {
			return common.ErrInvalidCredentials
		}

		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return common.Wrap(common.ErrInternal, err)
		}
		return repo.UpdatePassword(ctx, user.ID, hash)
	})

	s.record(ctx, audit.PasswordChanged, id.UserID, id.Username, err)
	if err != nil {
		if common.KindOf(err) == common.KindInternal {
			s.logger.Error(ctx, "error changing password", "user_id", id.UserID, "error", err.Error())
		}
		return err
	}
	return nil
}

// GetProfile returns the caller's account without its password hash. An
// account that no longer exists yields common.ErrUnauthenticated.
func (s *UserService) GetProfile(ctx context.Context, id *auth.Identity) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthenticated
		}
		s.logger.Error(ctx, "error loading user", "user_id", id.UserID, "error", err.Error())
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *UserService) timingHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("timing-equalizer-Pw0")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

func (s *UserService) record(ctx context.Context, event, actor, username string, err error) {
	reason := ""
	if err != nil {
		reason = common.KindOf(err).String()
	}
	s.recordReason(ctx, event, actor, username, reason)
}

func (s *UserService) recordReason(ctx context.Context, event, actor, username, reason string) {
	outcome := audit.OutcomeSuccess
	if reason != "" {
		outcome = audit.OutcomeFailure
	}
	s.audit.Record(ctx, audit.Event{
		Event:     event,
		Actor:     actor,
		Username:  username,
		Outcome:   outcome,
		Reason:    reason,
		Peer:      audit.PeerFromContext(ctx),
		Timestamp: s.now().UTC(),
	})
}
