package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"collection-portal/internal/api/handler/dto"
	"collection-portal/internal/api/middleware"
	"collection-portal/internal/domain/schedule"
	"collection-portal/internal/pkg/apperrors"
)

type ScheduleHandler struct {
	service schedule.ScheduleService
	logger  *slog.Logger
}

func NewScheduleHandler(s schedule.ScheduleService, l *slog.Logger) *ScheduleHandler {
	if s == nil {
		panic("schedule service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &ScheduleHandler{
		service: s,
		logger:  l.With("component", "ScheduleHandler"),
	}
}

// agentIDFromRequest prefers the bearer token's agent claim and falls back
// to the agentId query parameter when auth is disabled.
func agentIDFromRequest(r *http.Request) (int64, error) {
	if agentID, ok := middleware.AgentIDFromContext(r.Context()); ok {
		return agentID, nil
	}

	idStr := r.URL.Query().Get("agentId")
	if idStr == "" {
		return 0, fmt.Errorf("%w: agentId is required", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid agentId: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// GetDailySchedule handles GET /schedule
// @Summary Daily visit schedule
// @Description Returns the agent's customers in visit order, each joined with that day's payment when one exists. Defaults to today when date is omitted.
// @Tags Schedule
// @Produce json
// @Param date query string false "Schedule date (YYYY-MM-DD)" Example(2026-08-31)
// @Param agentId query int false "Agent ID, required only when auth is disabled" Minimum(1)
// @Success 200 {array} dto.ScheduleRowResponse "Ordered visit rows"
// @Failure 400 {object} dto.ErrorResponse "Invalid date or agent ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [get]
// @Security BearerAuth
func (h *ScheduleHandler) GetDailySchedule(w http.ResponseWriter, r *http.Request) {

	h.logger.DebugContext(r.Context(), "Received daily schedule request")

	agentID, err := agentIDFromRequest(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to resolve agent ID", slog.Any("error", err))
		respondError(w, err)
		return
	}

	day := time.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err = time.Parse(time.DateOnly, dateStr)
		if err != nil {
			h.logger.WarnContext(r.Context(), "Invalid schedule date", slog.String("date", dateStr))
			respondError(w, fmt.Errorf("%w: invalid date format (use YYYY-MM-DD)", apperrors.ErrInvalidArgument))
			return
		}
	}

	rows, err := h.service.GetDailySchedule(r.Context(), agentID, day)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to build daily schedule", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.ScheduleRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.NewScheduleRowResponse(row)
	}

	h.logger.InfoContext(r.Context(), "Daily schedule built successfully", slog.Int("rows", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// SaveVisitOrder handles PUT /schedule/order
// @Summary Save the agent's visit order
// @Description Overwrites the agent's preferred customer visit order wholesale.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param agentId query int false "Agent ID, required only when auth is disabled" Minimum(1)
// @Param request body dto.SaveVisitOrderRequest true "Ordered customer IDs"
// @Success 204 "Visit order saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid agent ID or order payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule/order [put]
// @Security BearerAuth
func (h *ScheduleHandler) SaveVisitOrder(w http.ResponseWriter, r *http.Request) {

	h.logger.DebugContext(r.Context(), "Received save visit order request")

	agentID, err := agentIDFromRequest(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to resolve agent ID", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.SaveVisitOrderRequest
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

	err = h.service.SaveVisitOrder(r.Context(), agentID, req.CustomerIDs)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrInvalidArgument) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to save visit order", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Visit order saved successfully", slog.Int("customers", len(req.CustomerIDs)))
	respondJSON(w, http.StatusNoContent, nil)
}
