package schedule

import (
	"context"

	"collection-portal/internal/pkg/apperrors"
)

var ErrOrderNotFound = apperrors.ErrNotFound

type VisitOrderRepository interface {
	// FindByAgent returns the agent's saved order, or ErrOrderNotFound when
	// the agent has never reordered.
	FindByAgent(ctx context.Context, agentID int64) (*VisitOrder, error)

	// Save overwrites the agent's order wholesale.
	Save(ctx context.Context, order *VisitOrder) error
}
