package optionRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AvailabilityPipeline builds the aggregation that joins each option to the
// bookings made for it on the given date and subtracts the booked slots at
// the store. The "from" collection must stay in sync with the booking repo.
func AvailabilityPipeline(date string) []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "bookingCollaction",
			"localField":   "name",
			"foreignField": "treatment",
			"pipeline": []bson.M{
				{"$match": bson.M{
					"$expr": bson.M{"$eq": []interface{}{"$appointmentDate", date}},
				}},
			},
			"as": "booked",
		}},
		{"$project": bson.M{
			"name":  1,
			"slots": 1,
			"price": 1,
			"booked": bson.M{
				"$map": bson.M{
					"input": "$booked",
					"as":    "book",
					"in":    "$$book.slot",
				},
			},
		}},
		{"$project": bson.M{
			"name":  1,
			"price": 1,
			"slots": bson.M{
				"$setDifference": []interface{}{"$slots", "$booked"},
			},
		}},
	}
}

func (r *mongoOptionRepo) Availability(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, AvailabilityPipeline(date))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode aggregated options: %w", err)
	}

	// A fully booked option comes back with slots unset; keep it in the
	// result with an explicit empty list rather than null.
	for i := range opts {
		if opts[i].Slots == nil {
			opts[i].Slots = []string{}
		}
	}
	return opts, nil
}
