package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/service"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func newTaskService(taskStore store.TaskStore) service.TaskService {
	return service.NewTaskService(taskStore, testLogger())
}

// seedTask inserts a task directly into the store with a fixed creation time
// so list ordering is deterministic.
func seedTask(
	t *testing.T,
	taskStore *mocks.MockTaskStore,
	userID uuid.UUID,
	title string,
	status domain.TaskStatus,
	createdAt time.Time,
) *domain.Task {
	t.Helper()

	task := &domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, taskStore.Create(context.Background(), task))
	return task
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	t.Run("new tasks start as todo", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())
		userID := uuid.New()

		task, err := svc.Create(context.Background(), userID, service.CreateTaskInput{
			Title:       "Write report",
			Description: "Quarterly numbers",
			Priority:    2,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.TaskStatusTodo, task.Status)
		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, 2, task.Priority)
		assert.Nil(t, task.DueDate)
		assert.NotEqual(t, uuid.Nil, task.ID)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())

		_, err := svc.Create(context.Background(), uuid.New(), service.CreateTaskInput{
			Title: "   ",
		})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("carries an optional due date", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())
		due := time.Now().UTC().Add(48 * time.Hour)

		task, err := svc.Create(context.Background(), uuid.New(), service.CreateTaskInput{
			Title:   "Pay invoice",
			DueDate: &due,
		})
		require.NoError(t, err)
		require.NotNil(t, task.DueDate)
		assert.True(t, task.DueDate.Equal(due))
	})
}

func TestTaskService_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the owner's task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		userID := uuid.New()
		seeded := seedTask(t, taskStore, userID, "Mine", domain.TaskStatusTodo, time.Now().UTC())

		task, err := svc.GetByID(context.Background(), userID, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, task.ID)
	})

	t.Run("missing task is not found", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())

		_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("another user's task is denied, not hidden", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		owner := uuid.New()
		intruder := uuid.New()
		seeded := seedTask(t, taskStore, owner, "Private", domain.TaskStatusTodo, time.Now().UTC())

		_, err := svc.GetByID(context.Background(), intruder, seeded.ID)
		assert.ErrorIs(t, err, service.ErrNotOwned)
	})
}

func TestTaskService_List(t *testing.T) {
	t.Parallel()

	t.Run("returns only the requesting user's tasks", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		alice := uuid.New()
		bob := uuid.New()
		now := time.Now().UTC()
		seedTask(t, taskStore, alice, "Alice 1", domain.TaskStatusTodo, now)
		seedTask(t, taskStore, alice, "Alice 2", domain.TaskStatusDone, now.Add(time.Second))
		seedTask(t, taskStore, bob, "Bob 1", domain.TaskStatusTodo, now)

		page, err := svc.List(context.Background(), alice, service.ListTasksInput{})
		require.NoError(t, err)

		assert.Equal(t, 2, page.Total)
		require.Len(t, page.Data, 2)
		for _, task := range page.Data {
			assert.Equal(t, alice, task.UserID)
		}
	})

	t.Run("orders newest first", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		userID := uuid.New()
		now := time.Now().UTC()
		seedTask(t, taskStore, userID, "oldest", domain.TaskStatusTodo, now.Add(-2*time.Hour))
		seedTask(t, taskStore, userID, "newest", domain.TaskStatusTodo, now)
		seedTask(t, taskStore, userID, "middle", domain.TaskStatusTodo, now.Add(-time.Hour))

		page, err := svc.List(context.Background(), userID, service.ListTasksInput{})
		require.NoError(t, err)
		require.Len(t, page.Data, 3)

		assert.Equal(t, "newest", page.Data[0].Title)
		assert.Equal(t, "middle", page.Data[1].Title)
		assert.Equal(t, "oldest", page.Data[2].Title)
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		userID := uuid.New()
		now := time.Now().UTC()
		seedTask(t, taskStore, userID, "a", domain.TaskStatusTodo, now)
		seedTask(t, taskStore, userID, "b", domain.TaskStatusDone, now.Add(time.Second))
		seedTask(t, taskStore, userID, "c", domain.TaskStatusDone, now.Add(2*time.Second))

		done := domain.TaskStatusDone
		page, err := svc.List(context.Background(), userID, service.ListTasksInput{Status: &done})
		require.NoError(t, err)

		assert.Equal(t, 2, page.Total)
		for _, task := range page.Data {
			assert.Equal(t, domain.TaskStatusDone, task.Status)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())

		bogus := domain.TaskStatus("archived")
		_, err := svc.List(context.Background(), uuid.New(), service.ListTasksInput{Status: &bogus})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("clamps page and limit", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		userID := uuid.New()
		now := time.Now().UTC()
		for i := 0; i < 25; i++ {
			seedTask(t, taskStore, userID, "task", domain.TaskStatusTodo,
				now.Add(time.Duration(i)*time.Second))
		}

		tests := []struct {
			name         string
			in           service.ListTasksInput
			wantPage     int
			wantPageSize int
			wantLen      int
		}{
			{"zero page becomes one", service.ListTasksInput{Page: 0, Limit: 10}, 1, 10, 10},
			{"negative page becomes one", service.ListTasksInput{Page: -3, Limit: 10}, 1, 10, 10},
			{"zero limit falls back to default", service.ListTasksInput{Page: 1, Limit: 0}, 1, 10, 10},
			{"oversized limit falls back to default", service.ListTasksInput{Page: 1, Limit: 101}, 1, 10, 10},
			{"last partial page", service.ListTasksInput{Page: 3, Limit: 10}, 3, 10, 5},
			{"page past the end is empty", service.ListTasksInput{Page: 9, Limit: 10}, 9, 10, 0},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				page, err := svc.List(context.Background(), userID, tc.in)
				require.NoError(t, err)

				assert.Equal(t, tc.wantPage, page.Page)
				assert.Equal(t, tc.wantPageSize, page.PageSize)
				assert.Equal(t, 25, page.Total)
				assert.Equal(t, 3, page.TotalPages)
				assert.Len(t, page.Data, tc.wantLen)
			})
		}
	})

	t.Run("empty result has an empty data slice", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())

		page, err := svc.List(context.Background(), uuid.New(), service.ListTasksInput{})
		require.NoError(t, err)

		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 0, page.TotalPages)
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (service.TaskService, *mocks.MockTaskStore, uuid.UUID, *domain.Task) {
		t.Helper()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		userID := uuid.New()
		task, err := svc.Create(context.Background(), userID, service.CreateTaskInput{
			Title:       "Original title",
			Description: "Original description",
			Priority:    1,
		})
		require.NoError(t, err)
		return svc, taskStore, userID, task
	}

	t.Run("applies only the supplied fields", func(t *testing.T) {
		t.Parallel()
		svc, _, userID, task := seed(t)

		newTitle := "New title"
		updated, err := svc.Update(context.Background(), userID, task.ID, service.UpdateTaskInput{
			Title: &newTitle,
		})
		require.NoError(t, err)

		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "Original description", updated.Description)
		assert.Equal(t, domain.TaskStatusTodo, updated.Status)
		assert.Equal(t, 1, updated.Priority)
		assert.Nil(t, updated.DueDate)
	})

	t.Run("moves a task through statuses", func(t *testing.T) {
		t.Parallel()
		svc, _, userID, task := seed(t)

		inProgress := domain.TaskStatusInProgress
		updated, err := svc.Update(context.Background(), userID, task.ID, service.UpdateTaskInput{
			Status: &inProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusInProgress, updated.Status)

		done := domain.TaskStatusDone
		updated, err = svc.Update(context.Background(), userID, task.ID, service.UpdateTaskInput{
			Status: &done,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusDone, updated.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		t.Parallel()
		svc, _, userID, task := seed(t)

		bogus := domain.TaskStatus("archived")
		_, err := svc.Update(context.Background(), userID, task.ID, service.UpdateTaskInput{
			Status: &bogus,
		})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		t.Parallel()
		svc, taskStore, userID, task := seed(t)

		empty := ""
		_, err := svc.Update(context.Background(), userID, task.ID, service.UpdateTaskInput{
			Title: &empty,
		})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)

		stored, err := taskStore.GetByID(context.Background(), task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Original title", stored.Title)
	})

	t.Run("persists the update", func(t *testing.T) {
		t.Parallel()
		svc, taskStore, userID, task := seed(t)

		priority := 5
		_, err := svc.Update(context.Background(), userID, task.ID, service.UpdateTaskInput{
			Priority: &priority,
		})
		require.NoError(t, err)

		stored, err := taskStore.GetByID(context.Background(), task.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Priority)
	})

	t.Run("another user cannot update the task", func(t *testing.T) {
		t.Parallel()
		svc, _, _, task := seed(t)

		newTitle := "Hijacked"
		_, err := svc.Update(context.Background(), uuid.New(), task.ID, service.UpdateTaskInput{
			Title: &newTitle,
		})
		assert.ErrorIs(t, err, service.ErrNotOwned)
	})

	t.Run("missing task is not found", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())

		newTitle := "Anything"
		_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), service.UpdateTaskInput{
			Title: &newTitle,
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the owner's task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		userID := uuid.New()
		task := seedTask(t, taskStore, userID, "Doomed", domain.TaskStatusTodo, time.Now().UTC())

		require.NoError(t, svc.Delete(context.Background(), userID, task.ID))

		_, err := taskStore.GetByID(context.Background(), task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("another user cannot delete the task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(taskStore)
		owner := uuid.New()
		task := seedTask(t, taskStore, owner, "Safe", domain.TaskStatusTodo, time.Now().UTC())

		err := svc.Delete(context.Background(), uuid.New(), task.ID)
		assert.ErrorIs(t, err, service.ErrNotOwned)

		_, getErr := taskStore.GetByID(context.Background(), task.ID)
		assert.NoError(t, getErr)
	})

	t.Run("missing task is not found", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(mocks.NewMockTaskStore())

		err := svc.Delete(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
