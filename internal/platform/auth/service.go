package auth

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords, so a caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service authenticates portal users against the demo directory.
type Service struct {
	tokens *TokenIssuer
	delay  time.Duration
	logger zerolog.Logger
}

func NewService(tokens *TokenIssuer, delay time.Duration, logger zerolog.Logger) *Service {
	return &Service{tokens: tokens, delay: delay, logger: logger}
}

// LoginResult is the successful outcome of a credential check.
type LoginResult struct {
	Actor Actor  `json:"user"`
	Token string `json:"token"`
}

// Login validates the credentials after an artificial delay that mimics
// an upstream identity provider. The delay respects context cancellation
// so a dropped connection does not leave a timer running.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return LoginResult{}, ctx.Err()
		}
	}

	actor, known := userDirectory[username]
	if !known || password != sharedPassword {
		s.logger.Warn().Str("username", username).Msg("login rejected")
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(actor)
	if err != nil {
		return LoginResult{}, err
	}

	s.logger.Info().
		Str("username", actor.Username).
		Str("role", actor.Role).
		Str("clinic_id", actor.ClinicID).
		Msg("login succeeded")

	return LoginResult{Actor: actor, Token: token}, nil
}
