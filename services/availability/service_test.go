package availability

import (
	"context"
	"sort"
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore backs both repositories with the same fixture data. Its
// Availability method reimplements the documented store-side contract
// independently, so comparing it with Resolve exercises the equivalence
// property rather than the resolver against itself.
type fakeStore struct {
	options  []models.AppointmentOption
	bookings []models.Booking
}

func (f *fakeStore) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	out := make([]models.AppointmentOption, len(f.options))
	for i, opt := range f.options {
		out[i] = opt
		out[i].Slots = append([]string(nil), opt.Slots...)
	}
	return out, nil
}

func (f *fakeStore) DistinctNames(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	for _, opt := range f.options {
		if _, ok := seen[opt.Name]; !ok {
			seen[opt.Name] = struct{}{}
			names = append(names, opt.Name)
		}
	}
	return names, nil
}

func (f *fakeStore) Availability(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	out := make([]models.AppointmentOption, len(f.options))
	for i, opt := range f.options {
		booked := make(map[string]struct{})
		for _, b := range f.bookings {
			if b.Treatment == opt.Name && b.AppointmentDate == date {
				booked[b.Slot] = struct{}{}
			}
		}
		remaining := []string{}
		for _, slot := range opt.Slots {
			if _, taken := booked[slot]; !taken {
				remaining = append(remaining, slot)
			}
		}
		out[i] = opt
		out[i].Slots = remaining
	}
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, b *models.Booking) error { return nil }

func (f *fakeStore) Exists(ctx context.Context, email, treatment, date string) (bool, error) {
	return false, nil
}

func (f *fakeStore) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}

func newService(options []models.AppointmentOption, bookings []models.Booking) (*DefaultAvailabilityService, *fakeStore) {
	store := &fakeStore{options: options, bookings: bookings}
	return &DefaultAvailabilityService{Options: store, Bookings: store}, store
}

func fixtureOptions() []models.AppointmentOption {
	return []models.AppointmentOption{
		{Name: "Teeth Orthodontics", Slots: []string{"8:00-9:00", "9:00-10:00", "10:00-11:00"}, Price: 90},
		{Name: "Cavity Filling", Slots: []string{"9:00-10:00", "10:00-11:00"}, Price: 120},
		{Name: "Teeth Whitening", Slots: []string{"13:00-14:00"}, Price: 60},
	}
}

func TestResolveNoBookingsReturnsAllSlots(t *testing.T) {
	svc, _ := newService(fixtureOptions(), nil)

	got, err := svc.Resolve(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"8:00-9:00", "9:00-10:00", "10:00-11:00"}, got[0].Slots)
	assert.Equal(t, []string{"9:00-10:00", "10:00-11:00"}, got[1].Slots)
	assert.Equal(t, []string{"13:00-14:00"}, got[2].Slots)
}

func TestResolveRemovesBookedSlot(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "2026-09-01", Treatment: "Cavity Filling", Slot: "9:00-10:00", Email: "a@example.com"},
	}
	svc, _ := newService(fixtureOptions(), bookings)

	got, err := svc.Resolve(context.Background(), "2026-09-01")
	require.NoError(t, err)

	var cavity models.AppointmentOption
	for _, opt := range got {
		if opt.Name == "Cavity Filling" {
			cavity = opt
		}
	}
	assert.Equal(t, []string{"10:00-11:00"}, cavity.Slots)
	assert.Equal(t, 120.0, cavity.Price)
}

func TestResolveFullyBookedOptionStaysInResult(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "2026-09-01", Treatment: "Teeth Whitening", Slot: "13:00-14:00", Email: "a@example.com"},
	}
	svc, _ := newService(fixtureOptions(), bookings)

	got, err := svc.Resolve(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.Len(t, got, 3)

	for _, opt := range got {
		if opt.Name == "Teeth Whitening" {
			require.NotNil(t, opt.Slots)
			assert.Empty(t, opt.Slots)
		}
	}
}

func TestResolveBookingsOnOtherDatesIgnored(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "2026-09-02", Treatment: "Cavity Filling", Slot: "9:00-10:00", Email: "a@example.com"},
	}
	svc, _ := newService(fixtureOptions(), bookings)

	got, err := svc.Resolve(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00-10:00", "10:00-11:00"}, got[1].Slots)
}

func TestResolveUnknownDateReturnsUnfiltered(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "2026-09-01", Treatment: "Cavity Filling", Slot: "9:00-10:00", Email: "a@example.com"},
	}
	svc, _ := newService(fixtureOptions(), bookings)

	got, err := svc.Resolve(context.Background(), "not-a-date")
	require.NoError(t, err)
	for i, opt := range got {
		assert.Equal(t, fixtureOptions()[i].Slots, opt.Slots)
	}
}

func TestResolvePreservesSlotOrder(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "2026-09-01", Treatment: "Teeth Orthodontics", Slot: "9:00-10:00", Email: "a@example.com"},
	}
	svc, _ := newService(fixtureOptions(), bookings)

	got, err := svc.Resolve(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"8:00-9:00", "10:00-11:00"}, got[0].Slots)
}

func TestResolveMatchesAggregate(t *testing.T) {
	bookings := []models.Booking{
		{AppointmentDate: "2026-09-01", Treatment: "Teeth Orthodontics", Slot: "8:00-9:00", Email: "a@example.com"},
		{AppointmentDate: "2026-09-01", Treatment: "Cavity Filling", Slot: "9:00-10:00", Email: "b@example.com"},
		{AppointmentDate: "2026-09-01", Treatment: "Cavity Filling", Slot: "10:00-11:00", Email: "c@example.com"},
		{AppointmentDate: "2026-09-02", Treatment: "Teeth Whitening", Slot: "13:00-14:00", Email: "d@example.com"},
	}
	svc, _ := newService(fixtureOptions(), bookings)

	for _, date := range []string{"2026-09-01", "2026-09-02", "2026-09-03", ""} {
		plain, err := svc.Resolve(context.Background(), date)
		require.NoError(t, err)
		aggregated, err := svc.ResolveAggregate(context.Background(), date)
		require.NoError(t, err)

		sort.Slice(plain, func(i, j int) bool { return plain[i].Name < plain[j].Name })
		sort.Slice(aggregated, func(i, j int) bool { return aggregated[i].Name < aggregated[j].Name })
		assert.Equal(t, plain, aggregated, "date %q", date)
	}
}

func TestTreatmentNames(t *testing.T) {
	svc, _ := newService(fixtureOptions(), nil)

	names, err := svc.TreatmentNames(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Teeth Orthodontics", "Cavity Filling", "Teeth Whitening"}, names)
}
