package models

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

type TaskType string

const (
	TaskCleaning    TaskType = "cleaning"
	TaskMaintenance TaskType = "maintenance"
	TaskInspection  TaskType = "inspection"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type HousekeepingTask struct {
	ID          string       `json:"id"`
	RoomID      string       `json:"roomId"`
	StaffID     string       `json:"staffId"`
	Status      TaskStatus   `json:"status"`
	Type        TaskType     `json:"type"`
	Priority    TaskPriority `json:"priority"`
	AssignedAt  time.Time    `json:"assignedAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

func (t TaskType) Valid() bool {
	switch t {
	case TaskCleaning, TaskMaintenance, TaskInspection:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// taskForward maps each state to the single next one. Housekeeping tasks move
// strictly forward, no skipping and no going back.
var taskForward = map[TaskStatus]TaskStatus{
	TaskPending:    TaskInProgress,
	TaskInProgress: TaskCompleted,
}

func (t HousekeepingTask) CanTransitionTo(target TaskStatus) bool {
	next, ok := taskForward[t.Status]
	return ok && next == target
}
