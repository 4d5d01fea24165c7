package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicate is returned by Create when the unique
// (email, treatment, appointmentDate) index rejects the insert.
var ErrDuplicate = errors.New("booking already exists for this email, treatment and date")

// ErrInvalidID is returned when a supplied id is not a valid object id.
var ErrInvalidID = errors.New("invalid booking id")

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create inserts a new booking and fills in its store-assigned id.
	Create(ctx context.Context, booking *models.Booking) error
	// Exists reports whether a booking with the same email, treatment and
	// date is already present.
	Exists(ctx context.Context, email, treatment, date string) (bool, error)
	// GetByDate retrieves all bookings on the given appointment date.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	// GetByEmail retrieves all bookings made by the given email.
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID retrieves one booking by id; nil when no booking matches.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.Name)
	repo := &mongoBookingRepo{
		coll: db.Collection("bookingCollaction"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}
