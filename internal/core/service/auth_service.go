package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/KennyASG/ticketapp/internal/core/auth"
	"github.com/KennyASG/ticketapp/internal/core/domain"
	"github.com/KennyASG/ticketapp/internal/core/ports"
)

// AuthService implements registration, login and user listing.
type AuthService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Register hashes the password and persists a new account with the default
// member role. A taken email yields domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.UserSummary, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleMember,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	summary := created.Summary()
	return &summary, nil
}

// Login authenticates and returns a signed bearer token carrying the user's
// id and role. An unknown email and a wrong password both yield
// domain.ErrInvalidCredentials so responses never reveal which accounts
// exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", err
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user logged in")

	return token, nil
}

// ListUsers returns every account's public fields. Admin gating happens in
// the RBAC middleware, not here.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}
