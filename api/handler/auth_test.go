package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestValidateReportsResolvedIdentity(t *testing.T) {
	h := &AuthHandler{baseHandler: newBaseHandler(nil, nil)}
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("X-User-ID", "user-42")

	h.Validate(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Valid  bool   `json:"valid"`
			UserID string `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Token is valid", body.Message)
	assert.True(t, body.Data.Valid)
	assert.Equal(t, "user-42", body.Data.UserID)
}

func TestValidateWithoutIdentity(t *testing.T) {
	h := &AuthHandler{baseHandler: newBaseHandler(nil, nil)}
	ctx := &fasthttp.RequestCtx{}

	h.Validate(ctx)

	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
}

func TestBearerToken(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "Bearer tok-123")
	assert.Equal(t, "tok-123", bearerToken(ctx))

	ctx = &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "tok-123")
	assert.Empty(t, bearerToken(ctx))

	assert.Empty(t, bearerToken(&fasthttp.RequestCtx{}))
}
