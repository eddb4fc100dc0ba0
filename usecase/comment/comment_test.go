package comment

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/backend/domain"
	"github.com/tasknest/backend/repository"
)

// fakeTaskRepo only needs owner-scoped lookups; the comment usecase never
// mutates tasks.
type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func (f *fakeTaskRepo) GetByID(_ context.Context, userID, id string) (*domain.Task, error) {
	if t, ok := f.tasks[id]; ok && t.UserID == userID {
		cp := *t
		return &cp, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskRepo) List(context.Context, repository.TaskFilter) ([]domain.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) ListChildren(context.Context, string, string) ([]domain.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) ChildCounts(context.Context, []string) (map[string]repository.ChildCounts, error) {
	return nil, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	return t, nil
}

func (f *fakeTaskRepo) Update(context.Context, *domain.Task) error { return nil }

func (f *fakeTaskRepo) UpdateStatus(context.Context, string, string, string) (*domain.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) Delete(context.Context, string, string) error         { return nil }
func (f *fakeTaskRepo) DeleteChildren(context.Context, string, string) error { return nil }

type fakeCommentRepo struct {
	items   []*domain.Comment
	authors map[string]domain.CommentAuthor
}

func (f *fakeCommentRepo) annotate(c domain.Comment) domain.Comment {
	if a, ok := f.authors[c.UserID]; ok {
		c.Author = &a
	}
	return c
}

func (f *fakeCommentRepo) GetByID(_ context.Context, userID, id string) (*domain.Comment, error) {
	for _, c := range f.items {
		if c.ID == id && c.UserID == userID {
			cp := f.annotate(*c)
			return &cp, nil
		}
	}
	return nil, domain.ErrCommentNotFound
}

func (f *fakeCommentRepo) ListByTask(_ context.Context, taskID string) ([]domain.Comment, error) {
	var out []domain.Comment
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].TaskID == taskID {
			out = append(out, f.annotate(*f.items[i]))
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) CountByTask(_ context.Context, taskID string) (int, error) {
	count := 0
	for _, c := range f.items {
		if c.TaskID == taskID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	cp := *comment
	f.items = append(f.items, &cp)
	return comment, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	for _, c := range f.items {
		if c.ID == comment.ID && c.UserID == comment.UserID {
			c.Content = comment.Content
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

func (f *fakeCommentRepo) Delete(_ context.Context, userID, id string) error {
	for i, c := range f.items {
		if c.ID == id && c.UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

func (f *fakeCommentRepo) DeleteByTask(_ context.Context, taskID string) error {
	kept := f.items[:0]
	for _, c := range f.items {
		if c.TaskID == taskID {
			continue
		}
		kept = append(kept, c)
	}
	f.items = kept
	return nil
}

const (
	ownerID    = "0f1e9f6a-2a9c-4a56-8d8a-6f1b6f1e9a11"
	strangerID = "98b7a6c5-d4e3-4f21-8a09-b8c7d6e5f422"
)

func newTestUseCase() (*UseCase, *fakeCommentRepo, string) {
	taskID := uuid.NewString()
	tasks := &fakeTaskRepo{tasks: map[string]*domain.Task{
		taskID: {ID: taskID, UserID: ownerID, Title: "Owned", Status: domain.TaskStatusPending},
	}}
	comments := &fakeCommentRepo{authors: map[string]domain.CommentAuthor{
		ownerID: {Name: "Owner", Email: "owner@example.com"},
	}}
	return New(comments, tasks, nil), comments, taskID
}

func TestCreateAndList(t *testing.T) {
	uc, _, taskID := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, ownerID, taskID, ContentInput{Content: "First note"})
	require.NoError(t, err)
	assert.Equal(t, taskID, created.TaskID)
	require.NotNil(t, created.Author)
	assert.Equal(t, "Owner", created.Author.Name)

	_, err = uc.Create(ctx, ownerID, taskID, ContentInput{Content: "Second note"})
	require.NoError(t, err)

	task, listed, err := uc.ListForTask(ctx, ownerID, taskID)
	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	require.Len(t, listed, 2)
	assert.Equal(t, "Second note", listed[0].Content)
	assert.Equal(t, "First note", listed[1].Content)
}

func TestCreateRequiresOwnedTask(t *testing.T) {
	uc, comments, taskID := newTestUseCase()
	ctx := context.Background()

	// A foreign task reads as not found before content validation runs.
	_, err := uc.Create(ctx, strangerID, taskID, ContentInput{Content: ""})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Empty(t, comments.items)

	_, err = uc.Create(ctx, ownerID, uuid.NewString(), ContentInput{Content: "orphan"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestCreateValidation(t *testing.T) {
	uc, _, taskID := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "too long", content: strings.Repeat("x", 301)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, ownerID, taskID, ContentInput{Content: tt.content})
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
		})
	}
}

func TestCount(t *testing.T) {
	uc, _, taskID := newTestUseCase()
	ctx := context.Background()

	task, count, err := uc.Count(ctx, ownerID, taskID)
	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, 0, count)

	_, err = uc.Create(ctx, ownerID, taskID, ContentInput{Content: "note"})
	require.NoError(t, err)

	_, count, err = uc.Count(ctx, ownerID, taskID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, _, err = uc.Count(ctx, strangerID, taskID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestAuthorshipBoundary(t *testing.T) {
	uc, _, taskID := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, ownerID, taskID, ContentInput{Content: "mine"})
	require.NoError(t, err)

	// Another user cannot read, edit or delete someone else's comment; the
	// misses read as plain not-found.
	_, err = uc.Get(ctx, strangerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	_, err = uc.Update(ctx, strangerID, created.ID, ContentInput{Content: "hijacked"})
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	err = uc.Delete(ctx, strangerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	got, err := uc.Get(ctx, ownerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Content)
}

func TestUpdate(t *testing.T) {
	uc, _, taskID := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, ownerID, taskID, ContentInput{Content: "draft"})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, ownerID, created.ID, ContentInput{Content: "final"})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)

	_, err = uc.Update(ctx, ownerID, created.ID, ContentInput{Content: strings.Repeat("x", 301)})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestDelete(t *testing.T) {
	uc, _, taskID := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, ownerID, taskID, ContentInput{Content: "temp"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, ownerID, created.ID))

	_, err = uc.Get(ctx, ownerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	err = uc.Delete(ctx, ownerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}
