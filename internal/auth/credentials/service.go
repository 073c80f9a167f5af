package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/mfndnc/lab-authentication-with-passport/internal/user"
)

const MinPasswordLength = 8

var (
	// ErrInvalidCredentials covers every local sign-in failure: unknown
	// username, missing password hash, wrong password. Callers must not
	// be able to tell which.
	ErrInvalidCredentials = errors.New("credentials: invalid username or password")

	ErrMissingFields    = errors.New("credentials: username and password are required")
	ErrPasswordTooShort = errors.New("credentials: password too short")
)

// Service handles local credential sign-up and verification.
type Service struct {
	users user.Store
}

func NewService(users user.Store) *Service {
	return &Service{users: users}
}

// SignUp validates the pair, hashes the password, and creates the
// identity record. The pre-check on the username exists only to give
// callers the "already taken" answer without a constraint round-trip;
// correctness comes from the store's uniqueness guarantee.
func (s *Service) SignUp(
	ctx context.Context,
	username string,
	password string,
) (*user.User, error) {

	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	_, err := s.users.ByUsername(ctx, username)
	if err == nil {
		return nil, user.ErrUsernameTaken
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("credentials: signup lookup failed: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies a local credential pair. A store failure is
// returned as-is, never collapsed into ErrInvalidCredentials; "wrong
// password" and "database down" are different answers.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (*user.User, error) {

	u, err := s.users.ByUsername(ctx, username)
	if errors.Is(err, user.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("credentials: signin lookup failed: %w", err)
	}

	if u.PasswordHash == "" {
		// external-only record, no local credential
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
