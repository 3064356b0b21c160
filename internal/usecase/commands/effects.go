package commands

import (
	"context"

	"github.com/google/uuid"
)

// nonCritical runs a post-commit side effect. Its failure is logged and
// counted, never returned: the command is already final.
func (o *orchestrator) nonCritical(ctx context.Context, effect string, meta Meta, entityID uuid.UUID, fn func(ctx context.Context) error, attrs ...any) {
	if err := fn(context.WithoutCancel(ctx)); err != nil {
		o.metrics.EffectFailed(ctx, effect)
		args := append([]any{
			"effect", effect,
			"tenant_id", meta.TenantID,
			"entity_id", entityID,
			"correlation_id", meta.CorrelationID,
			"error", err.Error(),
		}, attrs...)
		o.logger.Warn("non-critical effect failed", args...)
	}
}
