package repository

import (
	"context"

	"github.com/tasknest/backend/domain"
)

type CommentRepository interface {
	// GetByID is author-scoped: someone else's comment reports
	// domain.ErrCommentNotFound.
	GetByID(ctx context.Context, userID, id string) (*domain.Comment, error)
	// ListByTask returns comments newest first, author fields populated.
	ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	CountByTask(ctx context.Context, taskID string) (int, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, userID, id string) error
	DeleteByTask(ctx context.Context, taskID string) error
}
