package schedule_test

import (
	"collection-portal/internal/domain/customer"
	"collection-portal/internal/domain/schedule"
	"testing"

	"github.com/stretchr/testify/assert"
)

func customersByID(ids ...int64) []*customer.Customer {
	out := make([]*customer.Customer, len(ids))
	for i, id := range ids {
		out[i] = &customer.Customer{CustomerID: id}
	}
	return out
}

func orderOf(customers []*customer.Customer) []int64 {
	ids := make([]int64, len(customers))
	for i, c := range customers {
		ids[i] = c.CustomerID
	}
	return ids
}

func TestMergeOrder(t *testing.T) {
	t.Run("no saved order keeps store order", func(t *testing.T) {
		live := customersByID(1, 2, 3)
		merged := schedule.MergeOrder(live, nil)
		assert.Equal(t, []int64{1, 2, 3}, orderOf(merged))
	})

	t.Run("saved order takes precedence", func(t *testing.T) {
		live := customersByID(1, 2, 3)
		merged := schedule.MergeOrder(live, []int64{3, 1, 2})
		assert.Equal(t, []int64{3, 1, 2}, orderOf(merged))
	})

	t.Run("customers missing from saved order go to the back", func(t *testing.T) {
		live := customersByID(1, 2, 3, 4, 5)
		merged := schedule.MergeOrder(live, []int64{4, 2})
		assert.Equal(t, []int64{4, 2, 1, 3, 5}, orderOf(merged))
	})

	t.Run("stale ids in saved order are skipped", func(t *testing.T) {
		live := customersByID(1, 2)
		merged := schedule.MergeOrder(live, []int64{9, 2, 7, 1})
		assert.Equal(t, []int64{2, 1}, orderOf(merged))
	})

	t.Run("duplicate saved ids are consumed once", func(t *testing.T) {
		live := customersByID(1, 2, 3)
		merged := schedule.MergeOrder(live, []int64{2, 2, 2, 1})
		assert.Equal(t, []int64{2, 1, 3}, orderOf(merged))
	})

	t.Run("result is always a permutation of the live set", func(t *testing.T) {
		live := customersByID(10, 20, 30, 40)
		merged := schedule.MergeOrder(live, []int64{99, 30, 30, 10})

		assert.Len(t, merged, len(live))
		seen := make(map[int64]bool)
		for _, c := range merged {
			assert.False(t, seen[c.CustomerID], "customer %d appears twice", c.CustomerID)
			seen[c.CustomerID] = true
		}
	})

	t.Run("empty live set yields empty schedule", func(t *testing.T) {
		merged := schedule.MergeOrder(nil, []int64{1, 2, 3})
		assert.Empty(t, merged)
	})
}
