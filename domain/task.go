package domain

import "time"

// Task statuses. A task is either still open or done; there is no
// intermediate state.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task represents a user-owned todo item. A task may sit under one parent
// task; nesting stops there, so parent links form a forest of depth two.
type Task struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	ParentTaskID *string   `json:"parent_task_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Derived at read time from the children of a parent task, never stored.
	SubtaskCount    *int   `json:"subtask_count,omitempty"`
	PendingSubtasks *int   `json:"pending_subtasks,omitempty"`
	Subtasks        []Task `json:"subtasks,omitempty"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == TaskStatusCompleted
}

// IsSubtask reports whether the task sits under a parent.
func (t *Task) IsSubtask() bool {
	return t != nil && t.ParentTaskID != nil
}

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}
