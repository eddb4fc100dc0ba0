package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tasknest/backend/domain"
	"github.com/tasknest/backend/repository"
)

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation of CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) repository.CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) GetByID(ctx context.Context, userID, id string) (*domain.Comment, error) {
	const query = `
	SELECT c.id, c.task_id, c.user_id, c.content, c.created_at, c.updated_at, u.name, u.email
	FROM comments c
	JOIN users u ON u.id = c.user_id
	WHERE c.id = $1 AND c.user_id = $2
	`
	return scanComment(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *commentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	const query = `
	SELECT c.id, c.task_id, c.user_id, c.content, c.created_at, c.updated_at, u.name, u.email
	FROM comments c
	JOIN users u ON u.id = c.user_id
	WHERE c.task_id = $1
	ORDER BY c.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) CountByTask(ctx context.Context, taskID string) (int, error) {
	const query = `SELECT COUNT(*) FROM comments WHERE task_id = $1`
	var count int
	if err := r.pool.QueryRow(ctx, query, taskID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment == nil {
		return nil, domain.ErrInvalidPayload
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO comments (id, task_id, user_id, content)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.TaskID,
		comment.UserID,
		comment.Content,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt); err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if comment == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE comments
	SET content = $3,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.UserID,
		comment.Content,
	).Scan(&comment.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	return nil
}

func (r *commentRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM comments WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) DeleteByTask(ctx context.Context, taskID string) error {
	const query = `DELETE FROM comments WHERE task_id = $1`
	_, err := r.pool.Exec(ctx, query, taskID)
	return err
}

func scanComment(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Comment, error) {
	var comment domain.Comment
	var author domain.CommentAuthor

	if err := row.Scan(
		&comment.ID,
		&comment.TaskID,
		&comment.UserID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&author.Name,
		&author.Email,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}

	comment.Author = &author
	return &comment, nil
}
