package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	mwauth "gradevault/core/middleware/auth"
	"gradevault/feature/auth/models"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when no account matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// dormancyWindow is how long an account may stay inactive before its
// tokens are rejected.
const dormancyWindow = 30 * 24 * time.Hour

// Store is the GORM-backed account store. It also implements the request
// guard's Gate.
type Store struct {
	db *gorm.DB
}

// NewStore creates an account store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new account.
func (s *Store) Create(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID returns the account with the given id.
func (s *Store) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

// FindByEmail returns the account with the given email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

// Exists reports whether any account matches the email or the username.
// Empty arguments are ignored.
func (s *Store) Exists(ctx context.Context, email, username string) (bool, error) {
	query := s.db.WithContext(ctx).Model(&models.User{})
	switch {
	case email != "" && username != "":
		query = query.Where("email = ? OR username = ?", email, username)
	case email != "":
		query = query.Where("email = ?", email)
	case username != "":
		query = query.Where("username = ?", username)
	default:
		return false, nil
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

// Delete removes an account.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// VerifyActive implements the request guard's Gate: the account must
// exist and must not have been dormant past the window; passing the check
// refreshes the activity clock.
func (s *Store) VerifyActive(ctx context.Context, userID string) error {
	u, err := s.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return mwauth.ErrUnknownUser
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if now.Sub(u.LastActive) > dormancyWindow {
		return mwauth.ErrDormant
	}

	err = s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_active", now).Error
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

// TouchActive sets the account's activity clock, used at login.
func (s *Store) TouchActive(ctx context.Context, userID string) error {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_active", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}
