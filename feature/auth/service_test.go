package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gradevault/core/database"
	mwauth "gradevault/core/middleware/auth"
	"gradevault/core/token"
	"gradevault/feature/auth"
	"gradevault/feature/auth/models"
	"gradevault/feature/votes"
	votemodels "gradevault/feature/votes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &votemodels.Vote{}))
	return db
}

func newService(t *testing.T) (*auth.Service, *auth.Store, *votes.Store) {
	t.Helper()
	db := newTestDB(t)
	store := auth.NewStore(db)
	voteStore := votes.NewStore(db)
	svc := auth.NewService(store, token.NewManager("test-secret", 0, 0), voteStore, zap.NewNop())
	return svc, store, voteStore
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Mario@Example.COM", "mario", "secret-pw"))

	// Email matching is case-insensitive via lowercase normalization.
	session, err := svc.Login(ctx, "MARIO@example.com", "secret-pw")
	require.NoError(t, err)
	assert.Equal(t, "mario", session.User.Username)
	assert.Equal(t, "mario@example.com", session.User.Email)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
}

func TestRegister_Duplicate(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@b.c", "mario", "pw"))

	assert.ErrorIs(t, svc.Register(ctx, "a@b.c", "other", "pw"), auth.ErrAlreadyRegistered)
	assert.ErrorIs(t, svc.Register(ctx, "x@y.z", "mario", "pw"), auth.ErrAlreadyRegistered)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@b.c", "mario", "pw"))

	_, err := svc.Login(ctx, "a@b.c", "not-the-password")
	assert.ErrorIs(t, err, auth.ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), "nobody@b.c", "pw")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestRefreshAccess(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@b.c", "mario", "pw"))
	session, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	access, err := svc.RefreshAccess(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = svc.RefreshAccess(ctx, "garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidRefresh)
}

func TestRefreshAccess_DeletedUser(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@b.c", "mario", "pw"))
	session, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, session.User.ID))

	_, err = svc.RefreshAccess(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestDeleteAccount_PurgesRecords(t *testing.T) {
	svc, _, voteStore := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@b.c", "mario", "pw"))
	session, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	owned := votemodels.Vote{OwnerID: session.User.ID, Label: "mine", Subject: "s", ExamType: "e", Value: 30}
	foreign := votemodels.Vote{OwnerID: "someone-else", Label: "theirs", Subject: "s", ExamType: "e", Value: 18}
	require.NoError(t, voteStore.Create(ctx, &owned))
	require.NoError(t, voteStore.Create(ctx, &foreign))

	require.NoError(t, svc.DeleteAccount(ctx, session.User.ID))

	mine, err := voteStore.ListByOwner(ctx, session.User.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := voteStore.ListByOwner(ctx, "someone-else")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, session.User.ID), auth.ErrUserNotFound)
}

func TestVerifyActive(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@b.c", "mario", "pw"))
	session, err := svc.Login(ctx, "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, store.VerifyActive(ctx, session.User.ID))
}

func TestVerifyActive_UnknownUser(t *testing.T) {
	_, store, _ := newService(t)

	err := store.VerifyActive(context.Background(), "missing")
	assert.True(t, errors.Is(err, mwauth.ErrUnknownUser))
}

func TestVerifyActive_DormantAccount(t *testing.T) {
	db := newTestDB(t)
	store := auth.NewStore(db)
	ctx := context.Background()

	user := models.User{Email: "a@b.c", Username: "mario", Password: "hash"}
	require.NoError(t, store.Create(ctx, &user))

	stale := time.Now().UTC().Add(-31 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("last_active", stale).Error)

	err := store.VerifyActive(ctx, user.ID)
	assert.ErrorIs(t, err, mwauth.ErrDormant)
}

func TestVerifyActive_RefreshesActivityClock(t *testing.T) {
	db := newTestDB(t)
	store := auth.NewStore(db)
	ctx := context.Background()

	user := models.User{Email: "a@b.c", Username: "mario", Password: "hash"}
	require.NoError(t, store.Create(ctx, &user))

	recent := time.Now().UTC().Add(-10 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("last_active", recent).Error)

	require.NoError(t, store.VerifyActive(ctx, user.ID))

	got, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.LastActive.After(recent))
}
