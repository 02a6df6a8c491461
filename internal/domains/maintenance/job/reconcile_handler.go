package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"gallery-backend/internal/domains/maintenance"
	"gallery-backend/internal/shared"
)

// ReconcileHandler runs the orphan-blob sweep when the scheduled task fires.
type ReconcileHandler struct {
	service maintenance.Service
	grace   time.Duration
}

func NewReconcileHandler(service maintenance.Service, grace time.Duration) *ReconcileHandler {
	return &ReconcileHandler{
		service: service,
		grace:   grace,
	}
}

// ProcessTask implements asynq.Handler
func (h *ReconcileHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.StorageReconcilePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal StorageReconcile payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Dur("grace", h.grace).
		Int("limit", payload.Limit).
		Msg("Starting storage reconciliation sweep")

	result, err := h.service.Sweep(ctx, h.grace, payload.Limit)
	if err != nil {
		log.Error().Err(err).Msg("Storage reconciliation failed")
		return fmt.Errorf("sweep: %w", err)
	}

	log.Info().
		Int("scanned", result.Scanned).
		Int("removed", result.Removed).
		Msg("Storage reconciliation finished")

	return nil
}
