package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact is a one-way inbound message from the contact form.
type Contact struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
}
