package availability

import (
	"context"

	bookingRepo "medibook/database/repository/booking"
	optionRepo "medibook/database/repository/option"
	"medibook/models"
)

// AvailabilityService computes which appointment slots remain open for a
// given date. Two realizations are exposed: an application-side join and a
// store-side aggregation; both produce identical results for the same data.
type AvailabilityService interface {
	// Resolve loads options and the date's bookings and subtracts booked
	// slots in memory.
	Resolve(ctx context.Context, date string) ([]models.AppointmentOption, error)
	// ResolveAggregate pushes the same computation down into the store.
	ResolveAggregate(ctx context.Context, date string) ([]models.AppointmentOption, error)
	// TreatmentNames lists the distinct treatment names on offer.
	TreatmentNames(ctx context.Context) ([]string, error)
}

// DefaultAvailabilityService implements AvailabilityService over the option
// and booking repositories.
type DefaultAvailabilityService struct {
	Options  optionRepo.OptionRepository
	Bookings bookingRepo.BookingRepository
}
