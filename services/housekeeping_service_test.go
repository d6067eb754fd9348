package services

import (
	"testing"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHousekeepingService(tasks ...models.HousekeepingTask) *HousekeepingService {
	return NewHousekeepingService(&storage.Store{Tasks: tasks}, nil)
}

func TestTaskTransitionForwardOnly(t *testing.T) {
	svc := newHousekeepingService(models.HousekeepingTask{ID: "t1", Status: models.TaskPending})

	// Skipping straight to completed is rejected.
	_, err := svc.Transition("t1", models.TaskCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	task, err := svc.Transition("t1", models.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, task.Status)
	assert.Nil(t, task.CompletedAt)

	// Going back is rejected too.
	_, err = svc.Transition("t1", models.TaskPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	task, err = svc.Transition("t1", models.TaskCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)

	_, err = svc.Transition("t1", models.TaskInProgress)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTaskCreateDefaultsAndValidation(t *testing.T) {
	svc := newHousekeepingService()
	var verr *ValidationError

	_, err := svc.Create(models.HousekeepingTask{StaffID: "s1"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "roomId", verr.Field)

	_, err = svc.Create(models.HousekeepingTask{RoomID: "r1"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "staffId", verr.Field)

	task, err := svc.Create(models.HousekeepingTask{RoomID: "r1", StaffID: "s1", Status: models.TaskCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Equal(t, models.TaskCleaning, task.Type)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.False(t, task.AssignedAt.IsZero())
	assert.Nil(t, task.CompletedAt)
}

func TestTaskStats(t *testing.T) {
	svc := newHousekeepingService(
		models.HousekeepingTask{ID: "1", Status: models.TaskPending, Priority: models.PriorityHigh},
		models.HousekeepingTask{ID: "2", Status: models.TaskPending, Priority: models.PriorityLow},
		models.HousekeepingTask{ID: "3", Status: models.TaskInProgress, Priority: models.PriorityHigh},
		models.HousekeepingTask{ID: "4", Status: models.TaskCompleted, Priority: models.PriorityMedium},
	)

	stats := svc.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.HighPriority)
}

func TestStaffBreakdown(t *testing.T) {
	svc := newHousekeepingService(
		models.HousekeepingTask{ID: "1", StaffID: "staff-1", Status: models.TaskPending},
		models.HousekeepingTask{ID: "2", StaffID: "staff-1", Status: models.TaskCompleted},
		models.HousekeepingTask{ID: "3", StaffID: "staff-2", Status: models.TaskInProgress},
	)

	breakdown := svc.StaffBreakdown()
	require.Len(t, breakdown, 2)
	assert.Equal(t, StaffTaskCounts{Pending: 1, Completed: 1}, breakdown["staff-1"])
	assert.Equal(t, StaffTaskCounts{InProgress: 1}, breakdown["staff-2"])
}

func TestTaskListFilters(t *testing.T) {
	svc := newHousekeepingService(
		models.HousekeepingTask{ID: "1", Status: models.TaskPending, Type: models.TaskCleaning, Priority: models.PriorityHigh},
		models.HousekeepingTask{ID: "2", Status: models.TaskPending, Type: models.TaskMaintenance, Priority: models.PriorityLow},
	)

	assert.Len(t, svc.List(TaskFilter{}), 2)
	assert.Len(t, svc.List(TaskFilter{Status: models.TaskPending}), 2)
	assert.Len(t, svc.List(TaskFilter{Status: models.TaskPending, Type: models.TaskCleaning}), 1)
	assert.Empty(t, svc.List(TaskFilter{Status: models.TaskCompleted}))
}
