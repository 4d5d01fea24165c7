package userRepo

import (
	"context"
	"errors"
	"fmt"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidID is returned when a supplied id is not a valid object id.
var ErrInvalidID = errors.New("invalid user id")

// PromotionResult reports the outcome of an admin promotion.
type PromotionResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// UserRepository defines data access for users.
type UserRepository interface {
	// GetByEmail retrieves a user by email; nil when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Create inserts a new user record and fills in its store-assigned id.
	Create(ctx context.Context, user *models.User) error
	// PromoteToAdmin sets the role of the user with the given id to admin.
	// The update runs with upsert semantics: an unknown id creates a new
	// admin-role document rather than failing.
	PromoteToAdmin(ctx context.Context, id string) (*PromotionResult, error)
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(database.Name)
	repo := &MongoUserRepo{
		coll: db.Collection("usersCollaction"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}
