// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogz/internal/config"
	"blogz/internal/logger"
	"blogz/internal/store"
	"blogz/internal/utils"
	"blogz/models"
)

// sessionService is the concrete implementation of SessionService.
// Sessions live server-side as rows keyed by an opaque token, so closing one
// revokes it immediately for every holder of the token.
type sessionService struct {
	// sessionRepository is the data-access layer for session rows.
	sessionRepository store.SessionRepository

	// tokens mints opaque session tokens.
	tokens utils.TokenGenerator

	// sessionDuration controls how long a newly opened session stays valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// SessionRepository, with the session lifetime taken from cfg.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		tokens:            utils.TokenGenerator{},
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// Open establishes a new session for email.
//
// A fresh opaque token is minted on every call; concurrent logins for the
// same email each get their own session row.
func (s *sessionService) Open(ctx context.Context, email string) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	session := models.Session{
		Token:     s.tokens.Generate(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("email", email).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// Identity resolves a token to the authenticated email.
//
// An unknown and an expired token are indistinguishable to the caller: both
// yield ErrNoActiveSession.
func (s *sessionService) Identity(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return "", ErrNoActiveSession
	}

	session, err := s.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return "", ErrNoActiveSession
		}
		log.Err(err).Msg("session lookup failed")
		return "", fmt.Errorf("session lookup failed: %w", err)
	}

	return session.Email, nil
}

// Close destroys the session for token. Deleting a row that is already gone
// is not an error, so logging out twice succeeds.
func (s *sessionService) Close(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, token); err != nil {
		log.Err(err).Msg("session deletion ended with error")
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}

// Cleanup removes every session row whose expiry has passed.
func (s *sessionService) Cleanup(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	removed, err := s.sessionRepository.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		log.Err(err).Msg("expired session cleanup failed")
		return 0, fmt.Errorf("expired session cleanup failed: %w", err)
	}

	return removed, nil
}
