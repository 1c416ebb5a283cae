package ledger

import (
	"testing"

	"trade-journal-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSnapshotsDoNotAlias(t *testing.T) {
	s := NewStore([]models.Trade{{ID: "a"}, {ID: "b"}})

	before := s.Snapshot()
	s.Add(models.Trade{ID: "c"})
	s.Delete("a")

	// The snapshot taken before the mutations still sees the old collection.
	require.Len(t, before, 2)
	assert.Equal(t, "a", before[0].ID)

	after := s.Snapshot()
	require.Len(t, after, 2)
	assert.Equal(t, "b", after[0].ID)
	assert.Equal(t, "c", after[1].ID)
}

func TestStoreReplaceCopiesInput(t *testing.T) {
	input := []models.Trade{{ID: "a"}}
	s := NewStore(nil)
	s.Replace(input)

	input[0].ID = "mutated"

	assert.Equal(t, "a", s.Snapshot()[0].ID)
}

func TestStoreUpdateAndDeleteUnknownID(t *testing.T) {
	s := NewStore([]models.Trade{{ID: "a"}})

	assert.False(t, s.Update("missing", models.Trade{ID: "missing"}))
	assert.False(t, s.Delete("missing"))
	assert.Equal(t, 1, s.Len())
}

func TestStoreHasBrokerTradeID(t *testing.T) {
	s := NewStore([]models.Trade{
		{ID: "a", BrokerTradeID: "bk-1"},
		{ID: "b"},
	})

	assert.True(t, s.HasBrokerTradeID("bk-1"))
	assert.False(t, s.HasBrokerTradeID("bk-2"))
	assert.False(t, s.HasBrokerTradeID("")) // empty ids never participate in dedup
}
