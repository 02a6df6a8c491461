package main

import (
	"github.com/hibiken/asynq"

	"gallery-backend/internal/domains/maintenance/job"
	"gallery-backend/internal/shared"
	"gallery-backend/pkg/container"
)

// HandlerRegistry holds every task handler the worker serves.
type HandlerRegistry struct {
	reconcile *job.ReconcileHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		reconcile: job.NewReconcileHandler(c.MaintenanceService, c.Config.Jobs.OrphanGrace),
	}
}

// RegisterHandlers binds task types to their handlers on the mux.
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeStorageReconcile, r.reconcile)
}
