package ports

import (
	"context"
	"time"

	"github.com/KennyASG/ticketapp/internal/core/domain"
)

// CreateConcertInput carries all data needed to create a concert. Every
// field is mandatory.
type CreateConcertInput struct {
	Title       string
	Description string
	Date        time.Time
	StatusID    uint
}

// UpdateConcertInput carries a partial update; nil fields are left untouched.
type UpdateConcertInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	StatusID    *uint
}

// ConcertService exposes the concert catalog use cases.
type ConcertService interface {
	List(ctx context.Context) ([]domain.Concert, error)
	Get(ctx context.Context, id uint) (*domain.Concert, error)
	Create(ctx context.Context, in CreateConcertInput) (*domain.Concert, error)
	Update(ctx context.Context, id uint, in UpdateConcertInput) (*domain.Concert, error)
	Delete(ctx context.Context, id uint) error
}
