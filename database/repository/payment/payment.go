package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository defines data access for payment records.
type PaymentRepository interface {
	// Create inserts a new payment record and fills in its store-assigned id.
	Create(ctx context.Context, payment *models.Payment) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a PaymentRepository backed by MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoPaymentRepo{
		coll: db.Collection("paymentCollection"),
	}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return nil
}
