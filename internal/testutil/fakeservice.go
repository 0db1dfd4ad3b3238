// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"weekboard/internal/service"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for
// testing. It counts calls per operation so tests can assert that an
// operation never reached the store.
type FakeService struct {
	mu      sync.RWMutex
	buckets map[service.Bucket][]service.Task
	nextID  int

	// Call counters, incremented on every invocation, including ones that
	// fail via error injection.
	FetchCalls  int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	// Error injection for testing.
	FetchErr  map[service.Bucket]error // bucket -> error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// MalformedCreate makes CreateTask return an empty id with no error,
	// mimicking a success status with an unparseable body.
	MalformedCreate bool
}

// NewFakeService creates a FakeService with all buckets empty.
func NewFakeService() *FakeService {
	f := &FakeService{
		buckets:  make(map[service.Bucket][]service.Task),
		FetchErr: make(map[service.Bucket]error),
	}
	for _, b := range service.Buckets() {
		f.buckets[b] = nil
	}
	return f
}

// AddTask seeds an open task. An empty id is allowed, to exercise the
// degraded-data path.
func (f *FakeService) AddTask(bucket service.Bucket, id, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buckets[bucket] = append(f.buckets[bucket], service.Task{
		ID:          id,
		Description: description,
		Bucket:      bucket,
	})
}

// MarkCompleted flips a seeded task to completed.
func (f *FakeService) MarkCompleted(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for bucket, tasks := range f.buckets {
		for i, t := range tasks {
			if t.ID == id {
				f.buckets[bucket][i].Completed = true
				return
			}
		}
	}
}

// StoredTasks returns a copy of a bucket's stored tasks, for asserting the
// store-side state after an operation.
func (f *FakeService) StoredTasks(bucket service.Bucket) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.buckets[bucket]))
	copy(out, f.buckets[bucket])
	return out
}

// FetchTasks implements service.Service.
func (f *FakeService) FetchTasks(ctx context.Context, bucket service.Bucket) ([]service.Task, error) {
	f.mu.Lock()
	f.FetchCalls++
	err := f.FetchErr[bucket]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.buckets[bucket]))
	copy(out, f.buckets[bucket])
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, bucket service.Bucket, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CreateCalls++
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	if f.MalformedCreate {
		return "", nil
	}

	f.nextID++
	id := strconv.Itoa(f.nextID)
	f.buckets[bucket] = append(f.buckets[bucket], service.Task{
		ID:          id,
		Description: text,
		Bucket:      bucket,
	})
	return id, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.UpdateCalls++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}

	for bucket, tasks := range f.buckets {
		for i, t := range tasks {
			if t.ID != id {
				continue
			}
			if patch.Description != nil {
				t.Description = *patch.Description
			}
			if patch.Completed != nil {
				t.Completed = *patch.Completed
			}
			if patch.Bucket != nil && *patch.Bucket != bucket {
				f.buckets[bucket] = append(tasks[:i], tasks[i+1:]...)
				t.Bucket = *patch.Bucket
				f.buckets[t.Bucket] = append(f.buckets[t.Bucket], t)
				return nil
			}
			f.buckets[bucket][i] = t
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}

	for bucket, tasks := range f.buckets {
		for i, t := range tasks {
			if t.ID == id {
				f.buckets[bucket] = append(tasks[:i], tasks[i+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}
