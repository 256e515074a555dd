package report

import (
	"time"

	"collection-portal/internal/domain/customer"
	"collection-portal/internal/domain/payment"

	"github.com/shopspring/decimal"
)

// SummaryRow is one customer's progress against their pledged denomination
// over a date range. Remaining is not clamped: over-payment shows as a
// negative remainder.
type SummaryRow struct {
	Customer  *customer.Customer
	TotalPaid decimal.Decimal
	Remaining decimal.Decimal
	DaysPaid  int
}

// Aggregate joins customers with payments dated within [start, end], both
// ends inclusive, and emits one row per customer, including customers with
// no payments in range. Rows keep the customers' input order.
func Aggregate(customers []*customer.Customer, payments []*payment.Payment, start, end time.Time) []SummaryRow {
	paidByCustomer := make(map[int64]decimal.Decimal, len(customers))
	daysByCustomer := make(map[int64]int, len(customers))
	for _, p := range payments {
		if p.PayDate.Before(start) || p.PayDate.After(end) {
			continue
		}
		paidByCustomer[p.CustomerID] = paidByCustomer[p.CustomerID].Add(p.AmountPaid)
		daysByCustomer[p.CustomerID]++
	}

	rows := make([]SummaryRow, 0, len(customers))
	for _, c := range customers {
		totalPaid := paidByCustomer[c.CustomerID]
		denomination := decimal.NewFromInt(c.Denomination)
		rows = append(rows, SummaryRow{
			Customer:  c,
			TotalPaid: totalPaid,
			Remaining: denomination.Sub(totalPaid),
			DaysPaid:  daysByCustomer[c.CustomerID],
		})
	}
	return rows
}
