package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a bookable treatment with its slot list and price.
// The slot order in the document is the order shown to clients; availability
// resolution never mutates the stored document, it returns a derived view
// with booked slots removed.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}
