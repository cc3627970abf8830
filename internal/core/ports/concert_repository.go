package ports

import (
	"context"

	"github.com/KennyASG/ticketapp/internal/core/domain"
)

// ConcertRepository defines the interface for concert persistence.
type ConcertRepository interface {
	// List returns all concerts ordered by date ascending.
	List(ctx context.Context) ([]domain.Concert, error)
	FindByID(ctx context.Context, id uint) (*domain.Concert, error)
	Create(ctx context.Context, concert *domain.Concert) (*domain.Concert, error)
	// Update applies only the given columns and returns the merged record.
	Update(ctx context.Context, id uint, fields map[string]any) (*domain.Concert, error)
	Delete(ctx context.Context, id uint) error
	StatusExists(ctx context.Context, id uint) (bool, error)
}
