package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/seed"
	"github.com/idilsaglam/swimlane/internal/store"
)

func defaultBoard(t *testing.T) store.Collection {
	t.Helper()
	c, err := store.Initialize(seed.Default())
	require.NoError(t, err)
	return c
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestPartitionCoversEveryItemOnce(t *testing.T) {
	c := defaultBoard(t)
	// Shuffle a few lanes around so the partition is not just the seed.
	c = store.ReassignLane(c, "3", model.LaneComplete)
	c = store.ReassignLane(c, "2", model.LaneBacklog)

	seen := map[string]int{}
	for _, items := range Partition(c) {
		for _, it := range items {
			seen[it.ID]++
		}
	}
	require.Len(t, seen, c.Len())
	for id, n := range seen {
		require.Equal(t, 1, n, "item %s appears %d times", id, n)
	}
}

func TestViewPreservesCollectionOrder(t *testing.T) {
	c := defaultBoard(t)
	for _, lane := range model.Lanes {
		got := ids(View(c, lane))
		var want []string
		for _, it := range c.Items() {
			if it.Lane == lane {
				want = append(want, it.ID)
			}
		}
		require.Equal(t, want, got, "lane %s", lane)
	}
}

func TestViewIsDeterministic(t *testing.T) {
	c := defaultBoard(t)
	for _, lane := range model.Lanes {
		require.Equal(t, View(c, lane), View(c, lane))
	}
}

func TestMovedItemAppearsInTargetLaneOnly(t *testing.T) {
	c, err := store.Initialize([]model.SeedRow{{ID: "1", Name: "Acme", Description: "Widget", Lane: "in-progress"}})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, ids(View(c, model.LaneInProgress)))

	c = store.ReassignLane(c, "1", model.LaneComplete)
	require.Equal(t, []string{"1"}, ids(View(c, model.LaneComplete)))
	require.Empty(t, View(c, model.LaneInProgress))
}

func TestMovedItemKeepsRelativeOrder(t *testing.T) {
	c, err := store.Initialize([]model.SeedRow{
		{ID: "a", Lane: "complete"},
		{ID: "b", Lane: "backlog"},
		{ID: "c", Lane: "complete"},
	})
	require.NoError(t, err)
	c = store.ReassignLane(c, "b", model.LaneComplete)
	require.Equal(t, []string{"a", "b", "c"}, ids(View(c, model.LaneComplete)))
}

func TestCounts(t *testing.T) {
	c := defaultBoard(t)
	n := Counts(c)
	require.Equal(t, c.Len(), n[0]+n[1]+n[2])
	require.Equal(t, len(View(c, model.LaneComplete)), n[2])
}
