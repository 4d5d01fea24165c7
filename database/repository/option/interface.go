package optionRepo

import (
	"context"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OptionRepository defines data access for appointment options.
type OptionRepository interface {
	// GetAll retrieves every appointment option in stored order.
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
	// DistinctNames retrieves the distinct treatment names.
	DistinctNames(ctx context.Context) ([]string, error)
	// Availability computes the remaining open slots per option for the given
	// date inside the store, via an aggregation pipeline.
	Availability(ctx context.Context, date string) ([]models.AppointmentOption, error)
}

type mongoOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoOptionRepo constructs an OptionRepository backed by MongoDB.
func NewMongoOptionRepo() OptionRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoOptionRepo{
		coll: db.Collection("appointmentCollection"),
	}
}
