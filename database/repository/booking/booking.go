package bookingRepo

import (
	"context"
	"errors"

	"doctorportal/models"
)

// ErrDuplicateBooking is returned by Insert when a unique index rejects the
// booking, i.e. another booking already holds the same (date, treatment,
// email) or (date, treatment, slot) combination.
var ErrDuplicateBooking = errors.New("duplicate booking")

// BookingRepository persists committed reservations. Bookings are append-only:
// there is no update or delete.
type BookingRepository interface {
	// GetByDate retrieves all bookings for one appointment date.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	// GetByEmail retrieves all bookings made by one requester.
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// FindConflicts retrieves bookings matching (date, treatment, email).
	FindConflicts(ctx context.Context, date, treatment, email string) ([]models.Booking, error)
	// Insert commits a new booking. Returns ErrDuplicateBooking when a
	// uniqueness invariant would be violated.
	Insert(ctx context.Context, booking models.Booking) error
}
