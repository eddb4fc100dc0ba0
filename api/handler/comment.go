package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/tasknest/backend/api/transport"
	"github.com/tasknest/backend/pkg/httpcontext"
	commentUC "github.com/tasknest/backend/usecase/comment"
)

type CommentHandler struct {
	baseHandler
	uc *commentUC.UseCase
}

func NewCommentHandler(uc *commentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List comments of a task
// @Tags comments
// @Router /api/v1/tasks/{id}/comments [get]
func (h *CommentHandler) GetComments(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	taskID, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, comments, err := h.uc.ListForTask(stdCtx, userID, taskID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	count := len(comments)
	h.respondList(ctx, transport.Envelope{
		Success: true,
		Count:   &count,
		Data: map[string]interface{}{
			"task": map[string]string{
				"id":    task.ID,
				"title": task.Title,
			},
			"comments": comments,
		},
	})
}

// @Summary Comment count of a task
// @Tags comments
// @Router /api/v1/tasks/{id}/comments/count [get]
func (h *CommentHandler) GetCommentCount(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	taskID, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, count, err := h.uc.Count(stdCtx, userID, taskID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"task": map[string]string{
			"id":    task.ID,
			"title": task.Title,
		},
		"comment_count": count,
	}, "")
}

// @Summary Create comment on a task
// @Tags comments
// @Router /api/v1/tasks/{id}/comments [post]
func (h *CommentHandler) CreateComment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	taskID, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.CommentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, userID, taskID, commentUC.ContentInput{Content: req.Content})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created, "Comment created successfully")
}

// @Summary Get one comment
// @Tags comments
// @Router /api/v1/comments/{id} [get]
func (h *CommentHandler) GetComment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comment, err := h.uc.Get(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, comment, "")
}

// @Summary Update comment content
// @Tags comments
// @Router /api/v1/comments/{id} [put]
func (h *CommentHandler) UpdateComment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.CommentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comment, err := h.uc.Update(stdCtx, userID, id, commentUC.ContentInput{Content: req.Content})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, comment, "Comment updated successfully")
}

// @Summary Delete comment
// @Tags comments
// @Router /api/v1/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, userID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil, "Comment deleted successfully")
}
