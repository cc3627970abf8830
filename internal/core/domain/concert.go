package domain

import "time"

// Seeded concert status names. The rows themselves live in the
// concert_statuses table; concerts reference them by id.
const (
	StatusScheduled = "scheduled"
	StatusSoldOut   = "sold_out"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ConcertStatus is one row of the status enumeration.
type ConcertStatus struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Concert is a catalog entry. Title, Description, Date and StatusID are all
// mandatory on creation.
type Concert struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	StatusID    uint      `json:"status_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
