package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/tasknest/backend/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: domain.ErrTaskNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "parent not found", err: domain.ErrParentNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "invalid input", err: domain.ErrInvalidStatus, wantStatus: http.StatusBadRequest, wantCode: "INVALID"},
		{name: "nesting violation", err: domain.ErrSubtaskNesting, wantStatus: http.StatusBadRequest, wantCode: "INVARIANT"},
		{name: "pending subtasks", err: domain.ErrPendingSubtasks, wantStatus: http.StatusBadRequest, wantCode: "INVARIANT"},
		{name: "conflict", err: domain.ErrEmailTaken, wantStatus: http.StatusConflict, wantCode: "CONFLICT"},
		{name: "unauthorized", err: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "wrapped not found", err: domain.WrapError(domain.ErrCodeNotFound, "comment not found", errors.New("no rows")), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "plain error", err: errors.New("pool exhausted"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestRespondErrorHidesInternals(t *testing.T) {
	h := newBaseHandler(nil, nil)
	ctx := &fasthttp.RequestCtx{}

	h.respondError(ctx, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "INTERNAL", body.Error.Code)
	assert.Equal(t, "internal server error", body.Error.Message)
	assert.NotContains(t, string(ctx.Response.Body()), "10.0.0.5")
}

func TestRespondErrorDomainMessagePassesThrough(t *testing.T) {
	h := newBaseHandler(nil, nil)
	ctx := &fasthttp.RequestCtx{}

	h.respondError(ctx, domain.ErrPendingSubtasks)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "pending subtasks")
	assert.Contains(t, string(ctx.Response.Body()), "INVARIANT")
}

func TestUserIDMissing(t *testing.T) {
	h := newBaseHandler(nil, nil)
	ctx := &fasthttp.RequestCtx{}

	got := h.userID(ctx)

	assert.Empty(t, got)
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestUserIDForwarded(t *testing.T) {
	h := newBaseHandler(nil, nil)
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("X-User-ID", "user-42")

	assert.Equal(t, "user-42", h.userID(ctx))
}
