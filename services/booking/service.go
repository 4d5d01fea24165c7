package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// Create inserts a new booking, guarded against duplicates twice: a
// pre-insert existence check keeps the friendly conflict signal, and the
// collection's unique index catches the race where two identical requests
// pass the check concurrently.
func (s *DefaultBookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	logger := utils.GetLogger()

	exists, err := s.Repo.Exists(ctx, booking.Email, booking.Treatment, booking.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if exists {
		return nil, &AlreadyBookedError{Date: booking.AppointmentDate}
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicate) {
			return nil, &AlreadyBookedError{Date: booking.AppointmentDate}
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("id", booking.ID.Hex()),
		zap.String("treatment", booking.Treatment),
		zap.String("date", booking.AppointmentDate),
		zap.String("slot", booking.Slot))
	return booking, nil
}

// GetByEmail retrieves all bookings made by the given email.
func (s *DefaultBookingService) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// GetByID retrieves one booking by id.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return booking, nil
}
