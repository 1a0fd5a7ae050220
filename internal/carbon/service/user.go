package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/aussiebroadwan/carbon/internal/carbon/domain"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"
	"github.com/aussiebroadwan/carbon/pkg/cryptox"
	"github.com/aussiebroadwan/carbon/pkg/idx"
	"github.com/aussiebroadwan/carbon/pkg/slogx"
)

// MinPasswordLength counts characters, not bytes. The bcrypt 72 byte cap is
// enforced separately by the hasher.
const MinPasswordLength = 8

var (
	ErrMissingFields      = errors.New("missing_fields")
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrPasswordTooShort   = errors.New("password_too_short")
	ErrPasswordTooLong    = errors.New("password_too_long")
	ErrEmailTaken         = errors.New("email_taken")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrMissingAnswers     = errors.New("missing_quiz_answers")
	ErrNoQuizAnswers      = errors.New("no_quiz_answers")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// ValidEmail reports whether email has the shape signup accepts.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type UserService struct {
	Store  store.Store
	Hasher cryptox.Hasher
	Tokens *TokenService

	dummyOnce sync.Once
	dummyHash string
}

// Signup validates the request, creates the user, and returns a session
// token for it. The password is hashed exactly once here.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return domain.User{}, "", ErrMissingFields
	}
	if !ValidEmail(email) {
		return domain.User{}, "", ErrInvalidEmail
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.User{}, "", ErrPasswordTooShort
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return domain.User{}, "", ErrPasswordTooLong
		}
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	// The unique indexes decide concurrent signups; whoever loses gets the
	// same error a sequential duplicate would.
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			return domain.User{}, "", ErrEmailTaken
		case errors.Is(err, store.ErrUsernameTaken):
			return domain.User{}, "", ErrUsernameTaken
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(u.ID, u.Username)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u, token, nil
}

// Login checks email and password and returns a fresh session token. An
// unknown email and a wrong password both return ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison so response time doesn't reveal the miss.
			_ = s.Hasher.Verify(password, s.dummy())
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Warn("stored password hash unusable", slog.String("user_id", u.ID), slog.Any("err", err))
		}
		return "", ErrInvalidCredentials
	}

	if s.Hasher.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u.ID, password)
	}

	return s.Tokens.Issue(u.ID, u.Username)
}

// rehash upgrades a digest made with other parameters. Failure is logged and
// otherwise ignored; the old digest still verifies.
func (s *UserService) rehash(ctx context.Context, userID, password string) {
	l := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		l.Warn("password rehash failed", slog.String("user_id", userID), slog.Any("err", err))
		return
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		l.Warn("password rehash not stored", slog.String("user_id", userID), slog.Any("err", err))
		return
	}
	l.Info("password rehashed", slog.String("user_id", userID))
}

// SaveQuiz replaces the user's quiz answers. userID comes from a verified
// session token.
func (s *UserService) SaveQuiz(ctx context.Context, userID string, answers domain.QuizAnswers) error {
	if !answers.Complete() {
		return ErrMissingAnswers
	}

	if err := s.Store.Users().UpdateQuizAnswers(ctx, userID, answers); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update quiz answers: %w", err)
	}
	return nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Suggestions builds the report for the user's saved answers.
func (s *UserService) Suggestions(ctx context.Context, userID string) (string, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.QuizAnswers == nil {
		return "", ErrNoQuizAnswers
	}
	return GenerateSuggestions(*u.QuizAnswers), nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash("carbon-dummy-password")
	})
	return s.dummyHash
}
