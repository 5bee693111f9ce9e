// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"blogz/internal/logger"
	"blogz/internal/store"
	"blogz/internal/utils"
	"blogz/internal/validators"
	"blogz/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration-time validation, password hashing with bcrypt,
// and credential verification, delegating persistence to a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Validation runs in a fixed order and stops at the first failure:
//  1. the email must be shaped like an email address,
//  2. the password and its verification field must match,
//  3. the email must not already be registered.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrEmailNotShaped if the email fails the shape check.
//   - ErrPasswordsDoNotMatch if the verification field differs.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage error if persistence fails for any other reason.
func (a *authService) Register(ctx context.Context, email, password, verify string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !validators.IsEmailShaped(email) {
		log.Error().Str("email", email).Msg("email is not shaped like an email address")
		return models.User{}, ErrEmailNotShaped
	}

	if !validators.PasswordsMatch(password, verify) {
		log.Error().Str("email", email).Msg("password verification does not match")
		return models.User{}, ErrPasswordsDoNotMatch
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Error().Str("email", email).Msg("email is already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("uniqueness check failed")
		return models.User{}, fmt.Errorf("uniqueness check failed: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Email: email, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email and verifies the supplied password against
// the stored bcrypt hash. An unknown email and a wrong password both yield
// ErrInvalidCredentials so that login failures reveal nothing about which
// accounts exist.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
