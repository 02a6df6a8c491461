package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"gallery-backend/internal/config"
	"gallery-backend/internal/shared"
	"gallery-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterMaintenanceJobs() error {
	return s.registerStorageReconcileJob()
}

// ================================================
// JOB: Storage reconciliation sweep
// ================================================
// Runs off-peak; the grace period inside the sweep keeps it from deleting
// blobs whose record write is still in flight.
func (s *Scheduler) registerStorageReconcileJob() error {
	payload, err := json.Marshal(shared.StorageReconcilePayload{
		Limit: s.jobConfig.ReconcileLimit,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeStorageReconcile, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.ReconcileCron,
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register StorageReconcile job", err)
		return err
	}

	logger.Info("✓ Registered StorageReconcile", map[string]interface{}{
		"cron": s.jobConfig.ReconcileCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
