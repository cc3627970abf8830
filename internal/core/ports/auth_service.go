package ports

import (
	"context"

	"github.com/KennyASG/ticketapp/internal/core/domain"
)

// AuthService exposes the authentication use cases.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.UserSummary, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
}
