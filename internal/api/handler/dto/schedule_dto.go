package dto

import (
	"fmt"
	"strconv"

	"collection-portal/internal/domain/schedule"
)

type SaveVisitOrderRequest struct {
	CustomerIDs []int64 `json:"customerIds"`
}

func (r *SaveVisitOrderRequest) Validate() error {
	if len(r.CustomerIDs) == 0 {
		return fmt.Errorf("customerIds cannot be empty")
	}
	for _, id := range r.CustomerIDs {
		if id <= 0 {
			return fmt.Errorf("customerIds must all be positive numbers")
		}
	}
	return nil
}

type ScheduleRowResponse struct {
	Customer   CustomerResponse `json:"customer"`
	Paid       bool             `json:"paid"`
	PaymentID  *string          `json:"paymentId,omitempty"`
	AmountPaid *string          `json:"amountPaid,omitempty"`
}

func NewScheduleRowResponse(row schedule.ScheduleRow) ScheduleRowResponse {
	resp := ScheduleRowResponse{
		Customer: NewCustomerResponse(row.Customer),
	}

	if row.PaymentID != nil {
		id := strconv.FormatInt(*row.PaymentID, 10)
		resp.PaymentID = &id
		resp.Paid = true
	}
	if row.AmountPaid != nil {
		amount := row.AmountPaid.StringFixed(2)
		resp.AmountPaid = &amount
	}

	return resp
}
