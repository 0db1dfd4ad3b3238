// Package board implements the task board: eight ordered bucket collections
// kept consistent with a remote store. Every mutation is confirmed by the
// store before it lands in a collection; a failed call leaves the board
// exactly as it was.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"weekboard/internal/service"
)

// ErrEmptyDescription rejects create/rename input that is empty after
// trimming. It is reported synchronously, before any network call.
var ErrEmptyDescription = errors.New("description required")

// Board holds the authoritative local view of all bucket collections.
// Collections keep insertion order: append on create, append on move-in.
type Board struct {
	mu      sync.Mutex
	svc     service.Service
	buckets map[service.Bucket][]service.Task
}

// New creates an empty board backed by svc.
func New(svc service.Service) *Board {
	return &Board{
		svc:     svc,
		buckets: make(map[service.Bucket][]service.Task, len(service.Buckets())),
	}
}

// Tasks returns a copy of one bucket's collection, in insertion order.
func (b *Board) Tasks(bucket service.Bucket) []service.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	tasks := b.buckets[bucket]
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	return out
}

// Find returns the task with the given id, wherever it currently lives.
func (b *Board) Find(id string) (service.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	task, _, ok := b.locate(id)
	return task, ok
}

// FetchInitial replaces one bucket's collection with the store's task list.
// On failure the bucket is left empty and the error is returned for
// reporting; other buckets are unaffected.
func (b *Board) FetchInitial(ctx context.Context, bucket service.Bucket) error {
	tasks, err := b.svc.FetchTasks(ctx, bucket)
	if err != nil {
		b.mu.Lock()
		b.buckets[bucket] = nil
		b.mu.Unlock()
		return err
	}

	for i := range tasks {
		tasks[i].Bucket = bucket
		if tasks[i].ID == "" {
			// Degraded data: the store omitted the id. The fallback id is
			// local only; there is no reconciliation path if the real id
			// shows up later.
			tasks[i].ID = fallbackID()
		}
	}

	b.mu.Lock()
	b.buckets[bucket] = tasks
	b.mu.Unlock()
	return nil
}

// FetchAll fetches every bucket concurrently. One bucket's failure does not
// block or corrupt the others; the result maps failed buckets to their
// errors and is empty on full success.
func (b *Board) FetchAll(ctx context.Context) map[service.Bucket]error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := make(map[service.Bucket]error)

	for _, bucket := range service.Buckets() {
		bucket := bucket
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := b.FetchInitial(ctx, bucket); err != nil {
				mu.Lock()
				failed[bucket] = err
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return failed
}

// Create stores a new task and appends it to the bucket once the store
// confirms. Creation is not optimistic: the store is the sole id authority,
// so nothing is inserted before the response arrives.
func (b *Board) Create(ctx context.Context, bucket service.Bucket, description string) (service.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return service.Task{}, ErrEmptyDescription
	}

	id, err := b.svc.CreateTask(ctx, bucket, description)
	if err != nil {
		return service.Task{}, err
	}
	if id == "" {
		// Success status with a malformed body; fall back to a local id.
		id = fallbackID()
	}

	task := service.Task{ID: id, Description: description, Bucket: bucket}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, _, ok := b.locate(id); !ok {
		b.buckets[bucket] = append(b.buckets[bucket], task)
	}
	return task, nil
}

// Update applies a patch to a task. The local collection changes only after
// the store confirms. A bucket patch equal to the task's current bucket is
// dropped before the network call; if nothing else was patched the whole
// operation short-circuits.
func (b *Board) Update(ctx context.Context, id string, patch service.TaskPatch) error {
	if patch.Description != nil {
		trimmed := strings.TrimSpace(*patch.Description)
		if trimmed == "" {
			return ErrEmptyDescription
		}
		patch.Description = &trimmed
	}

	b.mu.Lock()
	current, _, ok := b.locate(id)
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if patch.Bucket != nil && *patch.Bucket == current.Bucket {
		patch.Bucket = nil
		if patch.Description == nil && patch.Completed == nil {
			b.mu.Unlock()
			return nil
		}
	}
	b.mu.Unlock()

	if err := b.svc.UpdateTask(ctx, id, patch); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.apply(id, patch)
	return nil
}

// Delete removes a task from its bucket once the store confirms the
// deletion. Removing an id the board no longer holds is a no-op.
func (b *Board) Delete(ctx context.Context, id string) error {
	if err := b.svc.DeleteTask(ctx, id); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if task, idx, ok := b.locate(id); ok {
		b.buckets[task.Bucket] = append(b.buckets[task.Bucket][:idx], b.buckets[task.Bucket][idx+1:]...)
	}
	return nil
}

// apply mutates the matching task in place. Idempotent: re-applying a
// confirmed patch to state already reflecting it leaves the board
// unchanged. Caller holds b.mu.
func (b *Board) apply(id string, patch service.TaskPatch) {
	task, idx, ok := b.locate(id)
	if !ok {
		return
	}

	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if patch.Bucket != nil && *patch.Bucket != task.Bucket {
		src := task.Bucket
		b.buckets[src] = append(b.buckets[src][:idx], b.buckets[src][idx+1:]...)
		task.Bucket = *patch.Bucket
		b.buckets[task.Bucket] = append(b.buckets[task.Bucket], task)
		return
	}

	b.buckets[task.Bucket][idx] = task
}

// locate finds a task by id across all buckets. Caller holds b.mu.
func (b *Board) locate(id string) (service.Task, int, bool) {
	for _, tasks := range b.buckets {
		for i, t := range tasks {
			if t.ID == id {
				return t, i, true
			}
		}
	}
	return service.Task{}, 0, false
}

// fallbackID generates a placeholder id for tasks the store returned
// without one.
func fallbackID() string {
	return "local-" + uuid.NewString()
}
