package services

import (
	"log"
	"time"

	"hoteldash-backend/models"
	"hoteldash-backend/storage"

	"github.com/google/uuid"
)

type HousekeepingService struct {
	Store     *storage.Store
	Snapshots *storage.SnapshotStore
}

func NewHousekeepingService(store *storage.Store, snapshots *storage.SnapshotStore) *HousekeepingService {
	return &HousekeepingService{Store: store, Snapshots: snapshots}
}

type TaskFilter struct {
	Status   models.TaskStatus
	Priority models.TaskPriority
	Type     models.TaskType
}

func (f TaskFilter) matches(t models.HousekeepingTask) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	return true
}

func (s *HousekeepingService) List(f TaskFilter) []models.HousekeepingTask {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make([]models.HousekeepingTask, 0, len(s.Store.Tasks))
	for _, t := range s.Store.Tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *HousekeepingService) Create(t models.HousekeepingTask) (models.HousekeepingTask, error) {
	if t.RoomID == "" {
		return models.HousekeepingTask{}, invalidField("roomId", "room is required")
	}
	if t.StaffID == "" {
		return models.HousekeepingTask{}, invalidField("staffId", "staff member is required")
	}
	if t.Type == "" {
		t.Type = models.TaskCleaning
	}
	if !t.Type.Valid() {
		return models.HousekeepingTask{}, invalidField("type", "unknown task type")
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if !t.Priority.Valid() {
		return models.HousekeepingTask{}, invalidField("priority", "unknown task priority")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Status = models.TaskPending
	t.AssignedAt = time.Now()
	t.CompletedAt = nil

	s.Store.Lock()
	defer s.Store.Unlock()
	s.Store.Tasks = append(s.Store.Tasks, t)
	s.persist()
	return t, nil
}

func (s *HousekeepingService) Delete(id string) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Tasks {
		if s.Store.Tasks[i].ID == id {
			s.Store.Tasks = append(s.Store.Tasks[:i], s.Store.Tasks[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Transition enforces the strictly forward pending -> in-progress ->
// completed chain. Skipping ahead or moving backwards is rejected. Completing
// a task stamps completedAt.
func (s *HousekeepingService) Transition(id string, target models.TaskStatus) (models.HousekeepingTask, error) {
	if !target.Valid() {
		return models.HousekeepingTask{}, invalidField("status", "unknown task status")
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	for i := range s.Store.Tasks {
		if s.Store.Tasks[i].ID != id {
			continue
		}
		if !s.Store.Tasks[i].CanTransitionTo(target) {
			return models.HousekeepingTask{}, ErrInvalidTransition
		}
		s.Store.Tasks[i].Status = target
		if target == models.TaskCompleted {
			now := time.Now()
			s.Store.Tasks[i].CompletedAt = &now
		}
		s.persist()
		return s.Store.Tasks[i], nil
	}
	return models.HousekeepingTask{}, ErrNotFound
}

type TaskStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	InProgress   int `json:"inProgress"`
	Completed    int `json:"completed"`
	HighPriority int `json:"highPriority"`
}

func (s *HousekeepingService) Stats() TaskStats {
	s.Store.RLock()
	defer s.Store.RUnlock()
	return taskStats(s.Store.Tasks)
}

func taskStats(tasks []models.HousekeepingTask) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.TaskPending:
			stats.Pending++
		case models.TaskInProgress:
			stats.InProgress++
		case models.TaskCompleted:
			stats.Completed++
		}
		if t.Priority == models.PriorityHigh {
			stats.HighPriority++
		}
	}
	return stats
}

type StaffTaskCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// StaffBreakdown groups task counts by staffId for the workload board.
func (s *HousekeepingService) StaffBreakdown() map[string]StaffTaskCounts {
	s.Store.RLock()
	defer s.Store.RUnlock()

	out := make(map[string]StaffTaskCounts)
	for _, t := range s.Store.Tasks {
		counts := out[t.StaffID]
		switch t.Status {
		case models.TaskPending:
			counts.Pending++
		case models.TaskInProgress:
			counts.InProgress++
		case models.TaskCompleted:
			counts.Completed++
		}
		out[t.StaffID] = counts
	}
	return out
}

func (s *HousekeepingService) persist() {
	if s.Snapshots == nil {
		return
	}
	if err := s.Snapshots.Save(storage.KeyHousekeepingTasks, s.Store.Tasks); err != nil {
		log.Printf("warning: failed to save housekeeping snapshot: %v", err)
	}
}
