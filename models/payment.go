package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PaymentBooking is the snapshot of the booking a payment was made against.
// It keeps its own id as a plain string; no back-reference is maintained and
// the booking document itself is never updated when a payment is recorded.
type PaymentBooking struct {
	ID              string  `bson:"_id" json:"id"`
	AppointmentDate string  `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string  `bson:"treatment" json:"treatment"`
	Patient         string  `bson:"patient" json:"patient"`
	Slot            string  `bson:"slot" json:"slot"`
	Email           string  `bson:"email" json:"email"`
	Phone           string  `bson:"phone" json:"phone"`
	Price           float64 `bson:"price" json:"price"`
}

// Payment records one payment attempt.
type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PaymentMethodID string             `bson:"paymentMethodId" json:"paymentMethodId"`
	Booking         PaymentBooking     `bson:"booking" json:"booking"`
}
