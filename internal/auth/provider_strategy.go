package auth

import (
	"context"

	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/linker"
	"github.com/mfndnc/lab-authentication-with-passport/internal/auth/provider"
	"github.com/mfndnc/lab-authentication-with-passport/internal/logger"
)

// ProviderStrategy completes an external authorization-code exchange
// and reconciles the resulting profile with the identity record store.
type ProviderStrategy struct {
	provider provider.OAuthProvider
	linker   *linker.Linker
}

func NewProviderStrategy(p provider.OAuthProvider, l *linker.Linker) *ProviderStrategy {
	return &ProviderStrategy{provider: p, linker: l}
}

func (s *ProviderStrategy) Name() string {
	return s.provider.Name()
}

func (s *ProviderStrategy) Authenticate(ctx context.Context, creds Credentials) Outcome {
	if creds.Code == "" {
		return Failure("missing authorization code")
	}

	profile, err := s.provider.Exchange(ctx, creds.Code)
	if err != nil {
		// a rejected or expired grant is an authentication failure,
		// not an infrastructure error
		logger.Warn("oauth exchange failed", map[string]any{
			"provider": s.provider.Name(),
			"error":    err.Error(),
		})
		return Failure("authorization grant rejected")
	}

	u, err := s.linker.Resolve(ctx, s.provider.Name(), profile.ID, profile)
	if err != nil {
		return Errored(err)
	}
	return Success(u)
}
