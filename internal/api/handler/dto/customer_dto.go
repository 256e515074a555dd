package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"collection-portal/internal/domain/customer"
)

const dateLayout = time.DateOnly

type CreateCustomerRequest struct {
	AccountNumber      string `json:"accountNumber"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	NomineeName        string `json:"nomineeName"`
	Address            string `json:"address"`
	MobileNumber       int64  `json:"mobileNumber"`
	Denomination       int64  `json:"denomination"`
	AccountOpeningDate string `json:"accountOpeningDate"`
	AgentID            int64  `json:"agentId"`
}

func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return fmt.Errorf("accountNumber cannot be empty")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName cannot be empty")
	}
	if strings.TrimSpace(r.NomineeName) == "" {
		return fmt.Errorf("nomineeName cannot be empty")
	}
	if r.Denomination <= 0 {
		return fmt.Errorf("denomination must be a positive number")
	}
	if _, err := time.Parse(dateLayout, r.AccountOpeningDate); err != nil || r.AccountOpeningDate == "" {
		return fmt.Errorf("invalid accountOpeningDate format (use YYYY-MM-DD): %w", err)
	}
	return nil
}

func (r *CreateCustomerRequest) ToDomain() *customer.Customer {
	openingDate, _ := time.Parse(dateLayout, r.AccountOpeningDate)
	return &customer.Customer{
		AccountNumber:      strings.TrimSpace(r.AccountNumber),
		FirstName:          strings.TrimSpace(r.FirstName),
		LastName:           strings.TrimSpace(r.LastName),
		NomineeName:        strings.TrimSpace(r.NomineeName),
		Address:            strings.TrimSpace(r.Address),
		MobileNumber:       r.MobileNumber,
		Denomination:       r.Denomination,
		AccountType:        customer.AccountTypeRD,
		AccountOpeningDate: openingDate,
		AgentID:            r.AgentID,
	}
}

type UpdateCustomerRequest struct {
	AccountNumber      *string `json:"accountNumber,omitempty"`
	FirstName          *string `json:"firstName,omitempty"`
	LastName           *string `json:"lastName,omitempty"`
	NomineeName        *string `json:"nomineeName,omitempty"`
	Address            *string `json:"address,omitempty"`
	MobileNumber       *int64  `json:"mobileNumber,omitempty"`
	Denomination       *int64  `json:"denomination,omitempty"`
	AccountOpeningDate *string `json:"accountOpeningDate,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if r.AccountNumber != nil && strings.TrimSpace(*r.AccountNumber) == "" {
		return fmt.Errorf("accountNumber cannot be empty")
	}
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		return fmt.Errorf("firstName cannot be empty")
	}
	if r.Denomination != nil && *r.Denomination <= 0 {
		return fmt.Errorf("denomination must be a positive number")
	}
	if r.AccountOpeningDate != nil {
		if _, err := time.Parse(dateLayout, *r.AccountOpeningDate); err != nil {
			return fmt.Errorf("invalid accountOpeningDate format (use YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (r *UpdateCustomerRequest) ToDomain() customer.UpdateDetails {
	details := customer.UpdateDetails{
		AccountNumber: r.AccountNumber,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		NomineeName:   r.NomineeName,
		Address:       r.Address,
		MobileNumber:  r.MobileNumber,
		Denomination:  r.Denomination,
	}
	if r.AccountOpeningDate != nil {
		openingDate, _ := time.Parse(dateLayout, *r.AccountOpeningDate)
		details.AccountOpeningDate = &openingDate
	}
	return details
}

type CustomerResponse struct {
	CustomerID         string     `json:"customerId"`
	AccountNumber      string     `json:"accountNumber"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	FullName           string     `json:"fullName"`
	NomineeName        string     `json:"nomineeName"`
	Address            string     `json:"address"`
	MobileNumber       int64      `json:"mobileNumber"`
	Denomination       int64      `json:"denomination"`
	AccountType        string     `json:"accountType"`
	AccountOpeningDate string     `json:"accountOpeningDate"`
	AgentID            int64      `json:"agentId"`
	TotalDeposited     string     `json:"totalDeposited"`
	MonthsPaidUpTo     int        `json:"monthsPaidUpTo"`
	LastDepositDate    *time.Time `json:"lastDepositDate,omitempty"`
	Archived           bool       `json:"archived"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		CustomerID:         strconv.FormatInt(cust.CustomerID, 10),
		AccountNumber:      cust.AccountNumber,
		FirstName:          cust.FirstName,
		LastName:           cust.LastName,
		FullName:           cust.FullName(),
		NomineeName:        cust.NomineeName,
		Address:            cust.Address,
		MobileNumber:       cust.MobileNumber,
		Denomination:       cust.Denomination,
		AccountType:        string(cust.AccountType),
		AccountOpeningDate: cust.AccountOpeningDate.Format(dateLayout),
		AgentID:            cust.AgentID,
		TotalDeposited:     cust.TotalDeposited.StringFixed(2),
		MonthsPaidUpTo:     cust.MonthsPaidUpTo,
		LastDepositDate:    cust.LastDepositDate,
		Archived:           cust.Archived,
		CreatedAt:          cust.CreatedAt,
		UpdatedAt:          cust.UpdatedAt,
	}
}
