// Package service defines the backend-agnostic interface for remote store
// operations.
package service

import "context"

// Service defines the interface for remote store operations.
// All REST calls go through this interface. The board and commands never
// build HTTP requests directly.
type Service interface {
	// FetchTasks returns the tasks stored for one bucket, in store order.
	// Tasks may come back without an id (degraded data); the caller decides
	// how to handle that.
	FetchTasks(ctx context.Context, bucket Bucket) ([]Task, error)

	// CreateTask stores a new task and returns the store-issued id.
	// An empty id with a nil error means the store accepted the task but
	// answered with a malformed body.
	CreateTask(ctx context.Context, bucket Bucket, text string) (string, error)

	// UpdateTask applies the non-nil fields of patch to the task.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) error

	// DeleteTask removes a task from the store.
	DeleteTask(ctx context.Context, id string) error
}
