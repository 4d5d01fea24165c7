package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a staff profile managed through the admin endpoints.
type Doctor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image string             `bson:"img" json:"img"`
}
