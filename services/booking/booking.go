package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "doctorportal/database/repository/booking"
	"doctorportal/models"

	"github.com/google/uuid"
)

// BookingService arbitrates and commits new bookings.
type BookingService interface {
	// Book validates the candidate against the one-booking-per-requester-per-
	// treatment-per-day invariant. On conflict it returns an acknowledged=false
	// result with a human-readable message and inserts nothing; otherwise it
	// commits the booking and returns the acknowledged record.
	Book(ctx context.Context, input models.BookingInput) (*models.BookingResult, error)
	// ListByEmail retrieves all bookings made by one requester.
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

func conflictResult(date string) *models.BookingResult {
	return &models.BookingResult{
		Acknowledged: false,
		Message:      fmt.Sprintf("You already have a booking on %s", date),
	}
}

func (s *DefaultBookingService) Book(ctx context.Context, input models.BookingInput) (*models.BookingResult, error) {
	existing, err := s.Repo.FindConflicts(ctx, input.AppointmentDate, input.Treatment, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return conflictResult(input.AppointmentDate), nil
	}

	record := models.Booking{
		ID:              uuid.NewString(),
		Email:           input.Email,
		Treatment:       input.Treatment,
		AppointmentDate: input.AppointmentDate,
		Slot:            input.Slot,
		PatientName:     input.PatientName,
		Phone:           input.Phone,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Insert(ctx, record); err != nil {
		// The unique indexes are the atomic arbiter: a concurrent writer that
		// slipped past the check above surfaces here as a duplicate key.
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return conflictResult(input.AppointmentDate), nil
		}
		return nil, err
	}

	return &models.BookingResult{Acknowledged: true, Booking: &record}, nil
}

func (s *DefaultBookingService) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
