package booking

import (
	"context"

	bookingRepo "medibook/database/repository/booking"
	paymentRepo "medibook/database/repository/payment"
	"medibook/models"
)

// BookingService covers booking lifecycle plus the payment operations that
// hang off a booking.
type BookingService interface {
	// Create inserts a new booking unless one already exists for the same
	// email, treatment and date; duplicates surface as *AlreadyBookedError.
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	// GetByEmail retrieves all bookings made by the given email.
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID retrieves one booking; ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// CreatePaymentIntent prepares a client secret for paying a booking.
	CreatePaymentIntent(ctx context.Context, booking *models.Booking) (*PaymentIntent, error)
	// RecordPayment stores a payment record.
	RecordPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}

// DefaultBookingService implements BookingService over the booking and
// payment repositories.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
}
