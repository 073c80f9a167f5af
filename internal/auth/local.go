package auth

import (
	"context"
	"errors"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/credentials"
)

// LocalStrategy verifies a username/password pair against the
// identity record store.
type LocalStrategy struct {
	service *credentials.Service
}

func NewLocalStrategy(service *credentials.Service) *LocalStrategy {
	return &LocalStrategy{service: service}
}

func (s *LocalStrategy) Name() string {
	return StrategyLocal
}

func (s *LocalStrategy) Authenticate(ctx context.Context, creds Credentials) Outcome {
	u, err := s.service.Authenticate(ctx, creds.Username, creds.Password)
	if errors.Is(err, credentials.ErrInvalidCredentials) {
		return Failure(WrongCredentials)
	}
	if err != nil {
		return Errored(err)
	}
	return Success(u)
}
