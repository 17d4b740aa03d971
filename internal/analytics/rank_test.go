package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopN(t *testing.T) {
	groups := []Group{
		{Key: "A", Total: 10},
		{Key: "B", Total: 40},
		{Key: "C", Total: 20},
		{Key: "D", Total: 40},
		{Key: "E", Total: 5},
		{Key: "F", Total: 30},
	}

	top := TopN(groups, 5)
	require.Len(t, top, 5)

	keys := make([]string, 0, len(top))
	for _, g := range top {
		keys = append(keys, g.Key)
	}
	// B before D: equal totals keep original key order
	assert.Equal(t, []string{"B", "D", "F", "C", "A"}, keys)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Total, top[i].Total)
	}
}

func TestTopNFewerGroupsThanLimit(t *testing.T) {
	groups := []Group{{Key: "A", Total: 1}, {Key: "B", Total: 2}}
	top := TopN(groups, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Key)
}

func TestTopNCarriesBookingIDs(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	groups := []Group{
		{Key: "A", Total: 1, BookingIDs: []uuid.UUID{idA}},
		{Key: "B", Total: 2, BookingIDs: []uuid.UUID{idB}},
	}

	top := TopN(groups, 2)
	assert.Equal(t, []uuid.UUID{idB}, top[0].BookingIDs, "id set must travel with its total through the sort")
	assert.Equal(t, []uuid.UUID{idA}, top[1].BookingIDs)
}

func TestTopNDoesNotMutateInput(t *testing.T) {
	groups := []Group{{Key: "A", Total: 1}, {Key: "B", Total: 2}}
	_ = TopN(groups, 0)
	assert.Equal(t, "A", groups[0].Key)
}
