package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"collection-portal/internal/api/handler/dto"
	"collection-portal/internal/domain/report"
	"collection-portal/internal/pkg/apperrors"
)

type ReportHandler struct {
	service report.ReportService
	logger  *slog.Logger
}

func NewReportHandler(s report.ReportService, l *slog.Logger) *ReportHandler {
	if s == nil {
		panic("report service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &ReportHandler{
		service: s,
		logger:  l.With("component", "ReportHandler"),
	}
}

// GetSummary handles GET /reports/summary
// @Summary Collection summary over a date range
// @Description One row per active customer with the total collected in [start, end] and the remaining balance against the pledged denomination. Both ends are inclusive.
// @Tags Reports
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)" Example(2026-08-01)
// @Param end query string true "Range end (YYYY-MM-DD)" Example(2026-08-31)
// @Success 200 {array} dto.SummaryRowResponse "Summary rows"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/summary [get]
// @Security BearerAuth
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {

	h.logger.DebugContext(r.Context(), "Received summary report request")

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.WarnContext(r.Context(), "Summary request missing range parameters")
		respondError(w, fmt.Errorf("%w: start and end are required (YYYY-MM-DD)", apperrors.ErrInvalidArgument))
		return
	}

	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		respondError(w, fmt.Errorf("%w: invalid start format (use YYYY-MM-DD)", apperrors.ErrInvalidArgument))
		return
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		respondError(w, fmt.Errorf("%w: invalid end format (use YYYY-MM-DD)", apperrors.ErrInvalidArgument))
		return
	}

	rows, err := h.service.SummarizeRange(r.Context(), start, end)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to summarize range", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.SummaryRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.NewSummaryRowResponse(row)
	}

	h.logger.InfoContext(r.Context(), "Summary report generated", slog.Int("rows", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// GetDashboard handles GET /reports/dashboard
// @Summary Admin dashboard aggregates
// @Description Active customer count, today's and trailing 30 day collection totals, and the ten most recent payments.
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard aggregates"
// @Failure 403 {object} dto.ErrorResponse "Caller lacks the admin role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/dashboard [get]
// @Security BearerAuth
func (h *ReportHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {

	h.logger.DebugContext(r.Context(), "Received dashboard request")

	dashboard, err := h.service.Dashboard(r.Context(), time.Now().UTC())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to build dashboard", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Dashboard generated successfully")
	respondJSON(w, http.StatusOK, dto.NewDashboardResponse(dashboard))
}
