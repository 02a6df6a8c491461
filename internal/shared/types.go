package shared

// Asynq task types and queues used by the maintenance worker.
const (
	TypeStorageReconcile = "storage:reconcile"

	QueueMaintenance = "low"
)

// StorageReconcilePayload parameterizes one orphan-blob sweep run.
type StorageReconcilePayload struct {
	Limit int `json:"limit"`
}
