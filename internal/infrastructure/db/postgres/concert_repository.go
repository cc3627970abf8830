package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KennyASG/ticketapp/internal/core/domain"
)

type statusRecord struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null;uniqueIndex"`
}

func (statusRecord) TableName() string { return "concert_statuses" }

type concertRecord struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"not null;index"`
	StatusID    uint      `gorm:"column:status_id;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (concertRecord) TableName() string { return "concerts" }

func (r *concertRecord) toDomain() *domain.Concert {
	return &domain.Concert{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		StatusID:    r.StatusID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ConcertRepository persists concerts through gorm.
type ConcertRepository struct {
	db *gorm.DB
}

func NewConcertRepository(db *gorm.DB) *ConcertRepository {
	return &ConcertRepository{db: db}
}

func (r *ConcertRepository) List(ctx context.Context) ([]domain.Concert, error) {
	var recs []concertRecord
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}

	concerts := make([]domain.Concert, 0, len(recs))
	for i := range recs {
		concerts = append(concerts, *recs[i].toDomain())
	}
	return concerts, nil
}

func (r *ConcertRepository) FindByID(ctx context.Context, id uint) (*domain.Concert, error) {
	var rec concertRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConcertNotFound
		}
		return nil, fmt.Errorf("find concert: %w", err)
	}

	return rec.toDomain(), nil
}

func (r *ConcertRepository) Create(ctx context.Context, concert *domain.Concert) (*domain.Concert, error) {
	rec := concertRecord{
		Title:       concert.Title,
		Description: concert.Description,
		Date:        concert.Date,
		StatusID:    concert.StatusID,
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert concert: %w", err)
	}

	return rec.toDomain(), nil
}

func (r *ConcertRepository) Update(ctx context.Context, id uint, fields map[string]any) (*domain.Concert, error) {
	tx := r.db.WithContext(ctx).Model(&concertRecord{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, fmt.Errorf("update concert: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrConcertNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *ConcertRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&concertRecord{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete concert: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrConcertNotFound
	}
	return nil
}

func (r *ConcertRepository) StatusExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&statusRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check status: %w", err)
	}
	return count > 0, nil
}
