package availability

import (
	"context"
	"fmt"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// Resolve computes the remaining open slots per option for the given date by
// loading all options plus the date's bookings and filtering in memory.
// Dates are compared by exact string equality, so an unknown or malformed
// date simply matches no bookings and every option comes back unfiltered.
func (s *DefaultAvailabilityService) Resolve(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	logger := utils.GetLogger()

	options, err := s.Options.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment options: %w", err)
	}

	booked, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	bookedSlots := make(map[string]map[string]struct{}, len(options))
	for _, b := range booked {
		slots, ok := bookedSlots[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedSlots[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	for i := range options {
		taken := bookedSlots[options[i].Name]
		// Preserve the option's original slot order; a fully booked option
		// stays in the result with an empty slot list.
		remaining := make([]string, 0, len(options[i].Slots))
		for _, slot := range options[i].Slots {
			if _, ok := taken[slot]; !ok {
				remaining = append(remaining, slot)
			}
		}
		options[i].Slots = remaining
	}

	logger.Debug("resolved slot availability",
		zap.String("date", date),
		zap.Int("options", len(options)),
		zap.Int("bookings", len(booked)))
	return options, nil
}

// ResolveAggregate computes the same view with a single aggregation query.
func (s *DefaultAvailabilityService) ResolveAggregate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	options, err := s.Options.Availability(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability for %s: %w", date, err)
	}
	return options, nil
}

// TreatmentNames lists the distinct treatment names on offer.
func (s *DefaultAvailabilityService) TreatmentNames(ctx context.Context) ([]string, error) {
	names, err := s.Options.DistinctNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatment names: %w", err)
	}
	return names, nil
}
