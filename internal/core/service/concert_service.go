package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/KennyASG/ticketapp/internal/core/domain"
	"github.com/KennyASG/ticketapp/internal/core/ports"
)

// ConcertService implements CRUD over the concert catalog.
type ConcertService struct {
	repo ports.ConcertRepository
	log  zerolog.Logger
}

func NewConcertService(repo ports.ConcertRepository, log zerolog.Logger) *ConcertService {
	return &ConcertService{repo: repo, log: log}
}

// List returns all concerts ordered by date ascending.
func (s *ConcertService) List(ctx context.Context) ([]domain.Concert, error) {
	return s.repo.List(ctx)
}

func (s *ConcertService) Get(ctx context.Context, id uint) (*domain.Concert, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new concert. Every field is mandatory; the status id
// must reference a seeded status row.
func (s *ConcertService) Create(ctx context.Context, in ports.CreateConcertInput) (*domain.Concert, error) {
	if in.Title == "" || in.Description == "" || in.Date.IsZero() || in.StatusID == 0 {
		return nil, domain.ErrInvalidInput
	}

	ok, err := s.repo.StatusExists(ctx, in.StatusID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrStatusNotFound
	}

	created, err := s.repo.Create(ctx, &domain.Concert{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		StatusID:    in.StatusID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("concert_id", created.ID).Str("title", created.Title).Msg("concert created")

	return created, nil
}

// Update merges only the provided fields into an existing concert.
func (s *ConcertService) Update(ctx context.Context, id uint, in ports.UpdateConcertInput) (*domain.Concert, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.StatusID != nil {
		ok, err := s.repo.StatusExists(ctx, *in.StatusID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrStatusNotFound
		}
		fields["status_id"] = *in.StatusID
	}

	if len(fields) == 0 {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("concert_id", id).Int("fields", len(fields)).Msg("concert updated")

	return updated, nil
}

func (s *ConcertService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Uint("concert_id", id).Msg("concert deleted")

	return nil
}
