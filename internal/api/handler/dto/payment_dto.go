package dto

import (
	"fmt"
	"strconv"
	"time"

	"collection-portal/internal/domain/payment"

	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	Amount  string `json:"amount"`
	PayDate string `json:"payDate"`
	AgentID int64  `json:"agentId,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	if _, err := decimal.NewFromString(r.Amount); err != nil || r.Amount == "" {
		return fmt.Errorf("invalid payment amount: %w", err)
	}
	if _, err := time.Parse(dateLayout, r.PayDate); err != nil || r.PayDate == "" {
		return fmt.Errorf("invalid payDate format (use YYYY-MM-DD): %w", err)
	}
	return nil
}

type PaymentResponse struct {
	PaymentID  string    `json:"paymentId"`
	CustomerID string    `json:"customerId"`
	AmountPaid string    `json:"amountPaid"`
	PayDate    string    `json:"payDate"`
	AgentID    int64     `json:"agentId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewPaymentResponse(p *payment.Payment) PaymentResponse {
	if p == nil {
		return PaymentResponse{}
	}

	return PaymentResponse{
		PaymentID:  strconv.FormatInt(p.PaymentID, 10),
		CustomerID: strconv.FormatInt(p.CustomerID, 10),
		AmountPaid: p.AmountPaid.StringFixed(2),
		PayDate:    p.PayDate.Format(dateLayout),
		AgentID:    p.AgentID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// CashTotalRequest maps note face values to counted note quantities, keyed
// by the note value as a string ("500": 3).
type CashTotalRequest struct {
	Notes map[string]int64 `json:"notes"`
}

func (r *CashTotalRequest) Validate() error {
	if len(r.Notes) == 0 {
		return fmt.Errorf("notes cannot be empty")
	}
	for value, count := range r.Notes {
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return fmt.Errorf("invalid note value %q: %w", value, err)
		}
		if count < 0 {
			return fmt.Errorf("note count for %s must not be negative", value)
		}
	}
	return nil
}

func (r *CashTotalRequest) ToDomain() (map[int64]int64, error) {
	notes := make(map[int64]int64, len(r.Notes))
	for value, count := range r.Notes {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid note value %q: %w", value, err)
		}
		notes[v] = count
	}
	return notes, nil
}

type CashTotalResponse struct {
	Total string `json:"total"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
	AgentID  int64  `json:"agentId"`
	Role     string `json:"role,omitempty"`
}
