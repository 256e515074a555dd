package schedule

import (
	"time"

	"collection-portal/internal/domain/customer"
)

// VisitOrder is one agent's preferred daily visit sequence. It is saved
// wholesale on each reorder; there are no partial or append semantics.
type VisitOrder struct {
	AgentID     int64
	CustomerIDs []int64
	UpdatedAt   time.Time
}

// MergeOrder combines a saved visit order with the live customer set into a
// deterministic full ordering: customers named by saved keep its sequence,
// everyone else follows in their original order. Ids in saved that are no
// longer live are skipped silently, and each id is consumed at most once, so
// the result is always a permutation of exactly the live set.
func MergeOrder(live []*customer.Customer, saved []int64) []*customer.Customer {
	if len(saved) == 0 {
		return live
	}

	remaining := make(map[int64]*customer.Customer, len(live))
	for _, c := range live {
		remaining[c.CustomerID] = c
	}

	ordered := make([]*customer.Customer, 0, len(live))
	for _, id := range saved {
		if c, ok := remaining[id]; ok {
			ordered = append(ordered, c)
			delete(remaining, id)
		}
	}

	// Customers created since the order was last saved go to the back, in
	// store order.
	for _, c := range live {
		if _, ok := remaining[c.CustomerID]; ok {
			ordered = append(ordered, c)
		}
	}

	return ordered
}
