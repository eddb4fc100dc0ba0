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

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	const query = `
	SELECT id, user_id, title, description, status, parent_task_id, created_at, updated_at
	FROM tasks
	WHERE id = $1 AND user_id = $2
	`
	row := r.pool.QueryRow(ctx, query, id, userID)
	return scanTask(row)
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	const query = `
	SELECT id, user_id, title, description, status, parent_task_id, created_at, updated_at
	FROM tasks
	WHERE user_id = $1
	  AND ($2::text = '' OR status = $2)
	  AND (NOT $3::bool OR parent_task_id IS NULL)
	ORDER BY created_at DESC
	LIMIT $4 OFFSET $5
	`
	rows, err := r.pool.Query(ctx, query, filter.UserID, filter.Status, filter.RootOnly, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *taskRepository) ListChildren(ctx context.Context, userID, parentID string) ([]domain.Task, error) {
	const query = `
	SELECT id, user_id, title, description, status, parent_task_id, created_at, updated_at
	FROM tasks
	WHERE parent_task_id = $1 AND user_id = $2
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, parentID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *taskRepository) ChildCounts(ctx context.Context, parentIDs []string) (map[string]repository.ChildCounts, error) {
	counts := make(map[string]repository.ChildCounts, len(parentIDs))
	if len(parentIDs) == 0 {
		return counts, nil
	}

	const query = `
	SELECT parent_task_id,
	       COUNT(*),
	       COUNT(*) FILTER (WHERE status = 'pending')
	FROM tasks
	WHERE parent_task_id = ANY($1)
	GROUP BY parent_task_id
	`
	rows, err := r.pool.Query(ctx, query, parentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parentID string
		var c repository.ChildCounts
		if err := rows.Scan(&parentID, &c.Total, &c.Pending); err != nil {
			return nil, err
		}
		counts[parentID] = c
	}
	return counts, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks (id, user_id, title, description, status, parent_task_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.ParentTaskID,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $3,
		description = $4,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, userID, id, status string) (*domain.Task, error) {
	const query = `
	UPDATE tasks
	SET status = $3,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING id, user_id, title, description, status, parent_task_id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, id, userID, status)
	return scanTask(row)
}

func (r *taskRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) DeleteChildren(ctx context.Context, userID, parentID string) error {
	const query = `DELETE FROM tasks WHERE parent_task_id = $1 AND user_id = $2`
	_, err := r.pool.Exec(ctx, query, parentID, userID)
	return err
}

func collectTasks(rows pgx.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.ParentTaskID,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}
