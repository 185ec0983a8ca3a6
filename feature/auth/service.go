package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gradevault/core/token"
	"gradevault/feature/auth/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrAlreadyRegistered is returned when the email or username is taken.
var ErrAlreadyRegistered = errors.New("email or username already registered")

// ErrWrongPassword is returned when credentials don't match.
var ErrWrongPassword = errors.New("wrong password")

// ErrInvalidRefresh is returned for an expired or malformed refresh token.
var ErrInvalidRefresh = errors.New("invalid refresh token")

// RecordPurger removes all of an owner's records when the account is
// deleted. The votes store satisfies this.
type RecordPurger interface {
	DeleteAll(ctx context.Context, ownerID string) error
}

// Service implements account management on top of the store.
type Service struct {
	store  *Store
	tokens *token.Manager
	purger RecordPurger
	logger *zap.Logger
}

// NewService creates an auth service.
func NewService(store *Store, tokens *token.Manager, purger RecordPurger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, tokens: tokens, purger: purger, logger: logger}
}

// Register creates an account with a bcrypt-hashed password. The email is
// normalized to lowercase.
func (s *Service) Register(ctx context.Context, email, username, password string) error {
	email = strings.ToLower(email)

	exists, err := s.store.Exists(ctx, email, username)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Email: email, Username: username, Password: string(hash)}
	if err := s.store.Create(ctx, &user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return nil
}

// Session is the result of a successful login.
type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// Login verifies credentials and issues both tokens.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.store.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	access, err := s.tokens.AccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.RefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.TouchActive(ctx, user.ID); err != nil {
		s.logger.Warn("failed to update activity at login", zap.String("user_id", user.ID), zap.Error(err))
	}

	return &Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshAccess exchanges a refresh token for a fresh access token.
func (s *Service) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	user, err := s.store.FindByID(ctx, claims.UserID())
	if err != nil {
		return "", err
	}

	return s.tokens.AccessToken(user.ID, user.Username, user.Email)
}

// Exists reports whether an account matches the email or username.
func (s *Service) Exists(ctx context.Context, email, username string) (bool, error) {
	return s.store.Exists(ctx, strings.ToLower(email), username)
}

// DeleteAccount removes the account and every record it owns.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.store.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.purger.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("failed to purge user records: %w", err)
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.String("user_id", userID))
	return nil
}
