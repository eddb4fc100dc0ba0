package repository

import (
	"context"

	"github.com/tasknest/backend/domain"
)

// TaskFilter narrows List results. UserID is mandatory; RootOnly excludes
// tasks that have a parent.
type TaskFilter struct {
	UserID   string
	Status   string
	RootOnly bool
	Limit    int
	Offset   int
}

// ChildCounts holds the per-parent subtask tallies computed at read time.
type ChildCounts struct {
	Total   int
	Pending int
}

type TaskRepository interface {
	// GetByID is owner-scoped: a task belonging to another user reports
	// domain.ErrTaskNotFound.
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	ListChildren(ctx context.Context, userID, parentID string) ([]domain.Task, error)
	// ChildCounts returns total and pending subtask counts for each of the
	// given parent IDs. Parents without children are absent from the map.
	ChildCounts(ctx context.Context, parentIDs []string) (map[string]ChildCounts, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	UpdateStatus(ctx context.Context, userID, id, status string) (*domain.Task, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteChildren(ctx context.Context, userID, parentID string) error
}
