package optionRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAvailabilityPipeline(t *testing.T) {
	pipeline := AvailabilityPipeline("2026-09-01")
	require.Len(t, pipeline, 3)

	lookup, ok := pipeline[0]["$lookup"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "bookingCollaction", lookup["from"])
	assert.Equal(t, "name", lookup["localField"])
	assert.Equal(t, "treatment", lookup["foreignField"])

	// The sub-pipeline filters the joined bookings by exact date equality.
	sub, ok := lookup["pipeline"].([]bson.M)
	require.True(t, ok)
	require.Len(t, sub, 1)
	match := sub[0]["$match"].(bson.M)
	expr := match["$expr"].(bson.M)
	assert.Equal(t, []interface{}{"$appointmentDate", "2026-09-01"}, expr["$eq"])

	// Final stage subtracts the booked slots from the option's slot list.
	project, ok := pipeline[2]["$project"].(bson.M)
	require.True(t, ok)
	slots := project["slots"].(bson.M)
	assert.Equal(t, []interface{}{"$slots", "$booked"}, slots["$setDifference"])
}
