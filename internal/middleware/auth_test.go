package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

type stubVerifier struct {
	userID string
	err    error
	seen   string
}

func (s *stubVerifier) Verify(_ context.Context, token string) (string, error) {
	s.seen = token
	return s.userID, s.err
}

func newRequestCtx(authorization string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/v1/tasks")
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	return ctx
}

func TestTokenAuthForwardsUserID(t *testing.T) {
	verifier := &stubVerifier{userID: "user-123"}
	var forwarded string
	handler := TokenAuth(verifier, nil)(func(ctx *fasthttp.RequestCtx) {
		forwarded = string(ctx.Request.Header.Peek("X-User-ID"))
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	ctx := newRequestCtx("Bearer tok-abc")
	handler(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "tok-abc", verifier.seen)
	assert.Equal(t, "user-123", forwarded)
}

func TestTokenAuthOverwritesClientUserID(t *testing.T) {
	verifier := &stubVerifier{userID: "real-user"}
	var forwarded string
	handler := TokenAuth(verifier, nil)(func(ctx *fasthttp.RequestCtx) {
		forwarded = string(ctx.Request.Header.Peek("X-User-ID"))
	})

	ctx := newRequestCtx("Bearer tok-abc")
	ctx.Request.Header.Set("X-User-ID", "spoofed-user")
	handler(ctx)

	assert.Equal(t, "real-user", forwarded)
}

func TestTokenAuthRejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		verifyErr     error
	}{
		{name: "missing header", authorization: ""},
		{name: "invalid token", authorization: "Bearer bad", verifyErr: errors.New("session not found")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			handler := TokenAuth(&stubVerifier{err: tt.verifyErr}, nil)(func(ctx *fasthttp.RequestCtx) {
				reached = true
			})

			ctx := newRequestCtx(tt.authorization)
			handler(ctx)

			assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
			assert.False(t, reached)
		})
	}
}

func TestExtractTokenBarePrefix(t *testing.T) {
	ctx := newRequestCtx("raw-token")
	assert.Equal(t, "raw-token", extractToken(ctx))

	ctx = newRequestCtx("Bearer with-prefix")
	assert.Equal(t, "with-prefix", extractToken(ctx))
}
