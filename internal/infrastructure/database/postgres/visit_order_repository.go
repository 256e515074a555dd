package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"collection-portal/internal/domain/schedule"
	"collection-portal/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type VisitOrderRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ schedule.VisitOrderRepository = (*VisitOrderRepository)(nil)

func NewVisitOrderRepository(db DBPool, logger *slog.Logger) *VisitOrderRepository {
	if db == nil {
		panic("DBPool cannot be nil for VisitOrderRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewVisitOrderRepository, using default stderr handler")
	}
	return &VisitOrderRepository{
		db:     db,
		logger: logger.With("component", "VisitOrderRepository"),
	}
}

func (r *VisitOrderRepository) FindByAgent(ctx context.Context, agentID int64) (*schedule.VisitOrder, error) {
	r.logger.InfoContext(ctx, "Attempting to find visit order for agent", slog.Int64("agentID", agentID))

	query := `
        SELECT agent_id, customer_ids, updated_at
        FROM visit_orders
        WHERE agent_id = $1`

	var order schedule.VisitOrder
	start := time.Now()
	err := r.db.QueryRow(ctx, query, agentID).Scan(
		&order.AgentID,
		&order.CustomerIDs,
		&order.UpdatedAt,
	)
	observeQuery("visit_order_find_by_agent", start, err)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.InfoContext(ctx, "No saved visit order for agent")
			return nil, schedule.ErrOrderNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query visit order", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query visit order: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Visit order found successfully", slog.Int("customers", len(order.CustomerIDs)))
	return &order, nil
}

func (r *VisitOrderRepository) Save(ctx context.Context, order *schedule.VisitOrder) error {
	if order == nil {
		return fmt.Errorf("%w: visit order cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to save visit order",
		slog.Int64("agentID", order.AgentID),
		slog.Int("customers", len(order.CustomerIDs)))

	query := `
        INSERT INTO visit_orders (agent_id, customer_ids, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (agent_id) DO UPDATE
        SET customer_ids = EXCLUDED.customer_ids,
            updated_at = NOW()`

	start := time.Now()
	_, err := r.db.Exec(ctx, query, order.AgentID, order.CustomerIDs)
	observeQuery("visit_order_save", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to save visit order", slog.Any("error", err))
		return fmt.Errorf("%w: failed to save visit order: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Visit order saved successfully")
	return nil
}
