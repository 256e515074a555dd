package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"collection-portal/internal/api/handler/dto"
	"collection-portal/internal/api/middleware"
	"collection-portal/internal/domain/payment"
	"collection-portal/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	service payment.LedgerService
	logger  *slog.Logger
}

func NewPaymentHandler(s payment.LedgerService, l *slog.Logger) *PaymentHandler {
	if s == nil {
		panic("ledger service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &PaymentHandler{
		service: s,
		logger:  l.With("component", "PaymentHandler"),
	}
}

// RecordPayment handles POST /customers/{customerID}/payments
// @Summary Record a daily payment
// @Description Records the customer's payment for a calendar day. A second write for the same customer and day replaces the amount instead of creating another row.
// @Tags Payments
// @Accept json
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Param request body dto.RecordPaymentRequest true "Payment payload"
// @Success 200 {object} dto.PaymentResponse "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID, amount or payDate"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID}/payments [post]
// @Security BearerAuth
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {

	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received record payment request")

	var req dto.RecordPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")

	amount, _ := decimal.NewFromString(req.Amount)
	payDate, _ := time.Parse(time.DateOnly, req.PayDate)

	// The authenticated agent wins over whatever the body claims.
	agentID := req.AgentID
	if ctxAgentID, ok := middleware.AgentIDFromContext(r.Context()); ok {
		agentID = ctxAgentID
	}

	recorded, err := h.service.RecordPayment(r.Context(), customerID, payDate, amount, agentID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidPaymentAmount) &&
			!errors.Is(err, apperrors.ErrCustomerArchived) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to record payment", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewPaymentResponse(recorded)
	h.logger.InfoContext(r.Context(), "Payment recorded successfully", slog.String("paymentID", resp.PaymentID))
	respondJSON(w, http.StatusOK, resp)
}

// GetCustomerPayments handles GET /customers/{customerID}/payments
// @Summary Payment history for a customer
// @Description Returns the customer's payments ordered newest first.
// @Tags Payments
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.PaymentResponse "Payment history"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID}/payments [get]
// @Security BearerAuth
func (h *PaymentHandler) GetCustomerPayments(w http.ResponseWriter, r *http.Request) {

	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received get customer payments request")

	payments, err := h.service.GetCustomerPayments(r.Context(), customerID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get customer payments", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = dto.NewPaymentResponse(p)
	}

	h.logger.InfoContext(r.Context(), "Customer payments listed successfully", slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// CashTotal handles POST /payments/cash-total
// @Summary Total a counted cash drawer
// @Description Multiplies note counts by face value and returns the drawer total. A convenience for agents reconciling collections at the end of a round.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.CashTotalRequest true "Note counts keyed by face value"
// @Success 200 {object} dto.CashTotalResponse "Drawer total"
// @Failure 400 {object} dto.ErrorResponse "Invalid note value or count"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/cash-total [post]
// @Security BearerAuth
func (h *PaymentHandler) CashTotal(w http.ResponseWriter, r *http.Request) {

	h.logger.DebugContext(r.Context(), "Received cash total request")

	var req dto.CashTotalRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	notes, err := req.ToDomain()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	total, err := payment.CashTotal(notes)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to total cash drawer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Cash drawer totalled", slog.String("total", total.String()))
	respondJSON(w, http.StatusOK, dto.CashTotalResponse{Total: total.StringFixed(2)})
}
