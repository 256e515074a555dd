package dto

import (
	"strconv"
	"time"

	"collection-portal/internal/domain/report"
)

type SummaryRowResponse struct {
	Customer  CustomerResponse `json:"customer"`
	TotalPaid string           `json:"totalPaid"`
	Remaining string           `json:"remaining"`
	DaysPaid  int              `json:"daysPaid"`
}

func NewSummaryRowResponse(row report.SummaryRow) SummaryRowResponse {
	return SummaryRowResponse{
		Customer:  NewCustomerResponse(row.Customer),
		TotalPaid: row.TotalPaid.StringFixed(2),
		Remaining: row.Remaining.StringFixed(2),
		DaysPaid:  row.DaysPaid,
	}
}

type RecentPaymentResponse struct {
	PaymentID    string `json:"paymentId"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	AmountPaid   string `json:"amountPaid"`
	PayDate      string `json:"payDate"`
}

type DashboardResponse struct {
	TotalCustomers  int64                   `json:"totalCustomers"`
	TotalToday      string                  `json:"totalToday"`
	TotalLast30Days string                  `json:"totalLast30Days"`
	RecentPayments  []RecentPaymentResponse `json:"recentPayments"`
	GeneratedAt     time.Time               `json:"generatedAt"`
}

func NewDashboardResponse(d *report.DashboardReport) DashboardResponse {
	if d == nil {
		return DashboardResponse{}
	}

	recent := make([]RecentPaymentResponse, len(d.RecentPayments))
	for i, p := range d.RecentPayments {
		recent[i] = RecentPaymentResponse{
			PaymentID:    strconv.FormatInt(p.PaymentID, 10),
			CustomerID:   strconv.FormatInt(p.CustomerID, 10),
			CustomerName: p.CustomerName,
			AmountPaid:   p.AmountPaid.StringFixed(2),
			PayDate:      p.PayDate.Format(dateLayout),
		}
	}

	return DashboardResponse{
		TotalCustomers:  d.TotalCustomers,
		TotalToday:      d.TotalToday.StringFixed(2),
		TotalLast30Days: d.TotalLast30Days.StringFixed(2),
		RecentPayments:  recent,
		GeneratedAt:     d.GeneratedAt,
	}
}
