package task

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tasknest/backend/domain"
	"github.com/tasknest/backend/pkg/logger"
	"github.com/tasknest/backend/repository"
	"github.com/tasknest/backend/usecase"
)

// UseCase implements the task store rules: ownership scoping, single-level
// nesting, the completion gate and the explicit delete cascade. Every
// operation takes the authenticated user ID as its first argument.
type UseCase struct {
	tasks    repository.TaskRepository
	comments repository.CommentRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, comments repository.CommentRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		comments: comments,
		validate: validator.New(),
		logger:   logger,
	}
}

type CreateInput struct {
	Title        string  `validate:"required,max=100"`
	Description  string  `validate:"max=500"`
	ParentTaskID *string `validate:"omitempty,uuid"`
}

type UpdateInput struct {
	Title       *string `validate:"omitempty,min=1,max=100"`
	Description *string `validate:"omitempty,max=500"`
}

// ListFilter mirrors the query surface of the list endpoint. Subtasks are
// excluded unless IncludeSubtasks is set.
type ListFilter struct {
	Status          string
	IncludeSubtasks bool
	Limit           int
	Offset          int
}

// List returns the user's tasks newest first. Parent tasks are annotated with
// subtask counts computed fresh from storage, never from a stored counter.
func (uc *UseCase) List(ctx context.Context, userID string, filter ListFilter) ([]domain.Task, error) {
	if filter.Status != "" && !domain.ValidTaskStatus(filter.Status) {
		return nil, domain.ErrInvalidStatus
	}

	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{
		UserID:   userID,
		Status:   filter.Status,
		RootOnly: !filter.IncludeSubtasks,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.annotateCounts(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get returns an owned task. Parent tasks carry their subtasks, newest first.
func (uc *UseCase) Get(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if !task.IsSubtask() {
		subtasks, err := uc.tasks.ListChildren(ctx, userID, task.ID)
		if err != nil {
			return nil, err
		}
		task.Subtasks = subtasks
	}
	return task, nil
}

// Create persists a new pending task. When a parent is given it must be an
// owned top-level task: a foreign or missing parent reads as not found, and a
// parent that is itself a subtask violates the nesting invariant.
func (uc *UseCase) Create(ctx context.Context, userID string, in CreateInput) (*domain.Task, error) {
	if err := usecase.Validate(uc.validate, in); err != nil {
		return nil, err
	}

	if in.ParentTaskID != nil {
		parent, err := uc.tasks.GetByID(ctx, userID, *in.ParentTaskID)
		if err != nil {
			if domain.IsDomainError(err, domain.ErrCodeNotFound) {
				return nil, domain.ErrParentNotFound
			}
			return nil, err
		}
		if parent.IsSubtask() {
			return nil, domain.ErrSubtaskNesting
		}
	}

	task := &domain.Task{
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       domain.TaskStatusPending,
		ParentTaskID: in.ParentTaskID,
	}
	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	logger.WithRequestID(ctx, uc.logger).Info("task created",
		zap.String("task_id", created.ID),
		zap.Bool("subtask", created.IsSubtask()))
	return created, nil
}

// Update applies a partial title/description change to an owned task.
func (uc *UseCase) Update(ctx context.Context, userID, taskID string, in UpdateInput) (*domain.Task, error) {
	if err := usecase.Validate(uc.validate, in); err != nil {
		return nil, err
	}

	task, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SetStatus toggles a task. Completing a top-level task recomputes its pending
// subtask count at that moment and refuses while any child is still pending;
// subtasks transition freely.
func (uc *UseCase) SetStatus(ctx context.Context, userID, taskID, status string) (*domain.Task, error) {
	if !domain.ValidTaskStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	task, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if status == domain.TaskStatusCompleted && !task.IsSubtask() {
		counts, err := uc.tasks.ChildCounts(ctx, []string{task.ID})
		if err != nil {
			return nil, err
		}
		if counts[task.ID].Pending > 0 {
			return nil, domain.ErrPendingSubtasks
		}
	}

	return uc.tasks.UpdateStatus(ctx, userID, taskID, status)
}

// Delete removes an owned task. For a parent task the cascade is explicit:
// comments of every child, the children, the task's own comments, then the
// task. Each step is idempotent, so a partial failure is repaired by
// repeating the call.
func (uc *UseCase) Delete(ctx context.Context, userID, taskID string) error {
	task, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if !task.IsSubtask() {
		children, err := uc.tasks.ListChildren(ctx, userID, task.ID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := uc.comments.DeleteByTask(ctx, child.ID); err != nil {
				return err
			}
		}
		if err := uc.tasks.DeleteChildren(ctx, userID, task.ID); err != nil {
			return err
		}
	}

	if err := uc.comments.DeleteByTask(ctx, task.ID); err != nil {
		return err
	}
	if err := uc.tasks.Delete(ctx, userID, taskID); err != nil {
		return err
	}

	logger.WithRequestID(ctx, uc.logger).Info("task deleted",
		zap.String("task_id", taskID),
		zap.Bool("subtask", task.IsSubtask()))
	return nil
}

// Subtasks lists the children of an owned parent task, newest first.
func (uc *UseCase) Subtasks(ctx context.Context, userID, parentID string) (*domain.Task, []domain.Task, error) {
	parent, err := uc.tasks.GetByID(ctx, userID, parentID)
	if err != nil {
		return nil, nil, err
	}
	subtasks, err := uc.tasks.ListChildren(ctx, userID, parentID)
	if err != nil {
		return nil, nil, err
	}
	return parent, subtasks, nil
}

func (uc *UseCase) annotateCounts(ctx context.Context, tasks []domain.Task) error {
	var parentIDs []string
	for i := range tasks {
		if !tasks[i].IsSubtask() {
			parentIDs = append(parentIDs, tasks[i].ID)
		}
	}
	if len(parentIDs) == 0 {
		return nil
	}

	counts, err := uc.tasks.ChildCounts(ctx, parentIDs)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].IsSubtask() {
			continue
		}
		c := counts[tasks[i].ID]
		total, pending := c.Total, c.Pending
		tasks[i].SubtaskCount = &total
		tasks[i].PendingSubtasks = &pending
	}
	return nil
}
