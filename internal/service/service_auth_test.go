// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"blogz/internal/logger"
	"blogz/internal/store"
	"blogz/internal/utils"
	"blogz/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *mockUserRepository) AuthService {
	return NewAuthService(users, logger.Nop())
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var savedUser models.User
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			savedUser = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	registered, err := svc.Register(context.Background(), "a@b.com", "secret", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "a@b.com", registered.Email)
	assert.NotEqual(t, "secret", savedUser.PasswordHash, "password must be stored hashed")
	assert.True(t, utils.VerifyPassword("secret", savedUser.PasswordHash))
}

func TestAuthService_Register_EmailNotShaped(t *testing.T) {
	called := false
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			called = true
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "abc", "secret", "secret")

	require.ErrorIs(t, err, ErrEmailNotShaped)
	assert.False(t, called, "shape failure must short-circuit before the uniqueness check")
}

func TestAuthService_Register_PasswordsDoNotMatch(t *testing.T) {
	called := false
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			called = true
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "a@b.com", "secret", "secre")

	require.ErrorIs(t, err, ErrPasswordsDoNotMatch)
	assert.False(t, called, "mismatch must short-circuit before the uniqueness check")
}

func TestAuthService_Register_EmailAlreadyTaken(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email}, nil
		},
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("CreateUser must not be called when the email is taken")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "a@b.com", "secret", "secret")

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_ConstraintBackstop(t *testing.T) {
	// a concurrent registration can slip between the uniqueness check and
	// the insert; the repository's constraint error must surface unchanged
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Register(context.Background(), "a@b.com", "secret", "secret")

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 3, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users)

	user, err := svc.Login(context.Background(), "a@b.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
}

// TestAuthService_RegisterThenLogin verifies the full credential round trip:
// the hash stored by Register must verify the same plaintext on Login.
func TestAuthService_RegisterThenLogin(t *testing.T) {
	accounts := map[string]models.User{}
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			user, ok := accounts[email]
			if !ok {
				return models.User{}, store.ErrNoUserWasFound
			}
			return user, nil
		},
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = int64(len(accounts) + 1)
			accounts[user.Email] = user
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	registered, err := svc.Register(context.Background(), "user@x.com", "pw123", "pw123")
	require.NoError(t, err)

	loggedIn, err := svc.Login(context.Background(), "user@x.com", "pw123")
	require.NoError(t, err, "login with the password used at registration must succeed")
	assert.Equal(t, registered.UserID, loggedIn.UserID)

	_, err = svc.Login(context.Background(), "user@x.com", "pw124")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), "nobody@b.com", "secret")

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 3, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users)

	_, err = svc.Login(context.Background(), "a@b.com", "wrong")

	require.ErrorIs(t, err, ErrInvalidCredentials,
		"wrong password and unknown email must be indistinguishable")
}

func TestAuthService_Login_StorageError(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), "a@b.com", "secret")

	require.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
