package comment

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tasknest/backend/domain"
	"github.com/tasknest/backend/pkg/logger"
	"github.com/tasknest/backend/repository"
	"github.com/tasknest/backend/usecase"
)

// UseCase implements the comment store. Comments bind to exactly one task and
// only the task's owner may create or touch them, so both the task lookup and
// the comment lookups are scoped to the calling user.
type UseCase struct {
	comments repository.CommentRepository
	tasks    repository.TaskRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func New(comments repository.CommentRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		comments: comments,
		tasks:    tasks,
		validate: validator.New(),
		logger:   logger,
	}
}

type ContentInput struct {
	Content string `validate:"required,min=1,max=300"`
}

// ListForTask returns the comments of an owned task, newest first, with
// author name/email attached.
func (uc *UseCase) ListForTask(ctx context.Context, userID, taskID string) (*domain.Task, []domain.Comment, error) {
	task, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := uc.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	return task, comments, nil
}

// Count reports how many comments an owned task has without fetching them.
func (uc *UseCase) Count(ctx context.Context, userID, taskID string) (*domain.Task, int, error) {
	task, err := uc.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, 0, err
	}
	count, err := uc.comments.CountByTask(ctx, taskID)
	if err != nil {
		return nil, 0, err
	}
	return task, count, nil
}

// Create attaches a comment to an owned task. A task owned by someone else
// reads as not found before any validation of the content happens.
func (uc *UseCase) Create(ctx context.Context, userID, taskID string, in ContentInput) (*domain.Comment, error) {
	if _, err := uc.tasks.GetByID(ctx, userID, taskID); err != nil {
		return nil, err
	}
	if err := usecase.Validate(uc.validate, in); err != nil {
		return nil, err
	}

	created, err := uc.comments.Create(ctx, &domain.Comment{
		TaskID:  taskID,
		UserID:  userID,
		Content: in.Content,
	})
	if err != nil {
		return nil, err
	}

	logger.WithRequestID(ctx, uc.logger).Info("comment created",
		zap.String("comment_id", created.ID),
		zap.String("task_id", taskID))

	// Re-read to pick up the author annotation for the response.
	return uc.comments.GetByID(ctx, userID, created.ID)
}

// Get returns a comment authored by the calling user.
func (uc *UseCase) Get(ctx context.Context, userID, commentID string) (*domain.Comment, error) {
	return uc.comments.GetByID(ctx, userID, commentID)
}

// Update replaces the content of a comment; only the original author may.
func (uc *UseCase) Update(ctx context.Context, userID, commentID string, in ContentInput) (*domain.Comment, error) {
	if err := usecase.Validate(uc.validate, in); err != nil {
		return nil, err
	}

	comment, err := uc.comments.GetByID(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = in.Content
	if err := uc.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment; only the original author may.
func (uc *UseCase) Delete(ctx context.Context, userID, commentID string) error {
	return uc.comments.Delete(ctx, userID, commentID)
}
