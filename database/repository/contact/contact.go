package contactRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository defines data access for contact messages.
type ContactRepository interface {
	// Create inserts a new contact message and fills in its store-assigned id.
	Create(ctx context.Context, contact *models.Contact) error
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo constructs a ContactRepository backed by MongoDB.
func NewMongoContactRepo() ContactRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoContactRepo{
		coll: db.Collection("contactCollection"),
	}
}

func (r *mongoContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid
	}
	return nil
}
