package event

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerEventPayload struct {
	CustomerID    int64     `json:"customerId"`
	AccountNumber string    `json:"accountNumber"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Denomination  int64     `json:"denomination"`
	AgentID       int64     `json:"agentId"`
	Archived      bool      `json:"archived"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type PaymentRecordedEvent struct {
	PaymentID  int64           `json:"paymentId"`
	CustomerID int64           `json:"customerId"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	PayDate    time.Time       `json:"payDate"`
	AgentID    int64           `json:"agentId"`
	Timestamp  time.Time       `json:"timestamp"`
}
