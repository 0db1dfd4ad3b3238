package board_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekboard/internal/board"
	"weekboard/internal/service"
	"weekboard/internal/testutil"
)

// snapshot captures every bucket's collection for before/after comparison.
func snapshot(b *board.Board) map[service.Bucket][]service.Task {
	out := make(map[service.Bucket][]service.Task)
	for _, bucket := range service.Buckets() {
		out[bucket] = b.Tasks(bucket)
	}
	return out
}

// checkBoardConsistency asserts that every task's Bucket field matches the
// collection holding it and that ids are unique across the whole board.
func checkBoardConsistency(t *testing.T, b *board.Board) {
	t.Helper()
	seen := make(map[string]service.Bucket)
	for _, bucket := range service.Buckets() {
		for _, task := range b.Tasks(bucket) {
			assert.Equal(t, bucket, task.Bucket, "task %s stored in %s", task.ID, bucket)
			prev, dup := seen[task.ID]
			assert.False(t, dup, "task %s present in both %s and %s", task.ID, prev, bucket)
			seen[task.ID] = bucket
		}
	}
}

func TestFetchInitial(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "1", "Buy milk")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))

	want := []service.Task{{ID: "1", Description: "Buy milk", Completed: false, Bucket: service.Monday}}
	assert.Equal(t, want, b.Tasks(service.Monday))
	checkBoardConsistency(t, b)
}

func TestFetchInitial_FailureEmptiesBucket(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "1", "Buy milk")
	svc.AddTask(service.Tuesday, "2", "Call Bob")

	b := board.New(svc)

	// Seed both buckets, then make Monday's refetch fail.
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))
	require.NoError(t, b.FetchInitial(context.Background(), service.Tuesday))
	svc.FetchErr[service.Monday] = errors.New("boom")

	err := b.FetchInitial(context.Background(), service.Monday)
	require.Error(t, err)
	assert.Empty(t, b.Tasks(service.Monday))

	// Other buckets are unaffected.
	assert.Len(t, b.Tasks(service.Tuesday), 1)
}

func TestFetchInitial_MissingIDGetsFallback(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Friday, "", "orphaned by the store")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Friday))

	tasks := b.Tasks(service.Friday)
	require.Len(t, tasks, 1)
	assert.True(t, strings.HasPrefix(tasks[0].ID, "local-"), "got id %q", tasks[0].ID)
	checkBoardConsistency(t, b)
}

func TestFetchAll_OneFailureDoesNotBlockOthers(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "1", "Buy milk")
	svc.AddTask(service.Someday, "2", "Learn sailing")
	svc.FetchErr[service.Wednesday] = errors.New("boom")

	b := board.New(svc)
	failed := b.FetchAll(context.Background())

	require.Len(t, failed, 1)
	assert.Error(t, failed[service.Wednesday])
	assert.Len(t, b.Tasks(service.Monday), 1)
	assert.Len(t, b.Tasks(service.Someday), 1)
	assert.Empty(t, b.Tasks(service.Wednesday))
	assert.Equal(t, 8, svc.FetchCalls)
	checkBoardConsistency(t, b)
}

func TestCreate(t *testing.T) {
	svc := testutil.NewFakeService()
	b := board.New(svc)

	task, err := b.Create(context.Background(), service.Monday, "Call Bob")
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Call Bob", task.Description)
	assert.False(t, task.Completed)

	tasks := b.Tasks(service.Monday)
	require.Len(t, tasks, 1)
	assert.Equal(t, task, tasks[0])
	checkBoardConsistency(t, b)
}

func TestCreate_EmptyDescriptionNeverCallsStore(t *testing.T) {
	svc := testutil.NewFakeService()
	b := board.New(svc)

	for _, desc := range []string{"", "  ", "\t\n"} {
		_, err := b.Create(context.Background(), service.Monday, desc)
		require.ErrorIs(t, err, board.ErrEmptyDescription)
	}

	assert.Zero(t, svc.CreateCalls)
	assert.Empty(t, b.Tasks(service.Monday))
}

func TestCreate_TrimsDescription(t *testing.T) {
	svc := testutil.NewFakeService()
	b := board.New(svc)

	task, err := b.Create(context.Background(), service.Tuesday, "  Water plants  ")
	require.NoError(t, err)
	assert.Equal(t, "Water plants", task.Description)
}

func TestCreate_FailureLeavesBoardUnchanged(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "1", "Buy milk")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))
	before := snapshot(b)

	svc.CreateErr = errors.New("boom")
	_, err := b.Create(context.Background(), service.Monday, "Call Bob")
	require.Error(t, err)

	assert.Equal(t, before, snapshot(b))
}

func TestCreate_MalformedResponseGetsFallbackID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.MalformedCreate = true

	b := board.New(svc)
	task, err := b.Create(context.Background(), service.Sunday, "Call Bob")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(task.ID, "local-"), "got id %q", task.ID)
	assert.Len(t, b.Tasks(service.Sunday), 1)
}

func TestUpdate_MoveBetweenBuckets(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "41", "Buy milk")
	svc.AddTask(service.Monday, "42", "Call Bob")
	svc.AddTask(service.Tuesday, "43", "Water plants")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))
	require.NoError(t, b.FetchInitial(context.Background(), service.Tuesday))

	dest := service.Tuesday
	require.NoError(t, b.Update(context.Background(), "42", service.TaskPatch{Bucket: &dest}))

	monday := b.Tasks(service.Monday)
	require.Len(t, monday, 1)
	assert.Equal(t, "41", monday[0].ID)

	tuesday := b.Tasks(service.Tuesday)
	require.Len(t, tuesday, 2)

	// Move-in appends; all other fields are preserved.
	moved := tuesday[1]
	assert.Equal(t, "42", moved.ID)
	assert.Equal(t, "Call Bob", moved.Description)
	assert.Equal(t, service.Tuesday, moved.Bucket)
	checkBoardConsistency(t, b)
}

func TestUpdate_MoveToCurrentBucketIsNoOp(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "42", "Call Bob")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))
	before := snapshot(b)

	dest := service.Monday
	require.NoError(t, b.Update(context.Background(), "42", service.TaskPatch{Bucket: &dest}))

	assert.Zero(t, svc.UpdateCalls, "no network call expected")
	assert.Equal(t, before, snapshot(b))
}

func TestUpdate_Toggle(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "42", "Call Bob")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))

	completed := true
	require.NoError(t, b.Update(context.Background(), "42", service.TaskPatch{Completed: &completed}))
	assert.True(t, b.Tasks(service.Monday)[0].Completed)

	// Re-applying the same confirmed patch is a no-op.
	require.NoError(t, b.Update(context.Background(), "42", service.TaskPatch{Completed: &completed}))
	assert.True(t, b.Tasks(service.Monday)[0].Completed)
	assert.Len(t, b.Tasks(service.Monday), 1)

	completed = false
	require.NoError(t, b.Update(context.Background(), "42", service.TaskPatch{Completed: &completed}))
	assert.False(t, b.Tasks(service.Monday)[0].Completed)
}

func TestUpdate_Rename(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "42", "Call Bob")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))

	desc := "  Call Bob about the roof  "
	require.NoError(t, b.Update(context.Background(), "42", service.TaskPatch{Description: &desc}))
	assert.Equal(t, "Call Bob about the roof", b.Tasks(service.Monday)[0].Description)
}

func TestUpdate_EmptyRenameRejectedLocally(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "42", "Call Bob")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))
	before := snapshot(b)

	desc := "   "
	err := b.Update(context.Background(), "42", service.TaskPatch{Description: &desc})
	require.ErrorIs(t, err, board.ErrEmptyDescription)

	assert.Zero(t, svc.UpdateCalls)
	assert.Equal(t, before, snapshot(b))
}

func TestUpdate_FailureLeavesBoardUnchanged(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "42", "Call Bob")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))
	before := snapshot(b)

	svc.UpdateErr = errors.New("boom")
	dest := service.Tuesday
	err := b.Update(context.Background(), "42", service.TaskPatch{Bucket: &dest})
	require.Error(t, err)

	assert.Equal(t, before, snapshot(b))
	checkBoardConsistency(t, b)
}

func TestUpdate_UnknownTask(t *testing.T) {
	svc := testutil.NewFakeService()
	b := board.New(svc)

	completed := true
	err := b.Update(context.Background(), "nope", service.TaskPatch{Completed: &completed})
	require.Error(t, err)
	assert.Zero(t, svc.UpdateCalls)
}

func TestDelete(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "41", "Buy milk")
	svc.AddTask(service.Monday, "42", "Call Bob")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))

	require.NoError(t, b.Delete(context.Background(), "41"))

	tasks := b.Tasks(service.Monday)
	require.Len(t, tasks, 1)
	assert.Equal(t, "42", tasks[0].ID)
	checkBoardConsistency(t, b)
}

func TestDelete_FailureLeavesBoardUnchanged(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Monday, "42", "Call Bob")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Monday))
	before := snapshot(b)

	svc.DeleteErr = errors.New("boom")
	require.Error(t, b.Delete(context.Background(), "42"))

	assert.Equal(t, before, snapshot(b))
}

func TestFind(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(service.Saturday, "7", "Sleep in")

	b := board.New(svc)
	require.NoError(t, b.FetchInitial(context.Background(), service.Saturday))

	task, ok := b.Find("7")
	require.True(t, ok)
	assert.Equal(t, service.Saturday, task.Bucket)

	_, ok = b.Find("8")
	assert.False(t, ok)
}
