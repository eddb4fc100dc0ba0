package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/tasknest/backend/pkg/logger"
)

// Adapter derives a stdlib context from a fasthttp request so usecases and
// repositories stay free of fasthttp types. Every request gets a deadline and
// a request ID; the ID is echoed back in the X-Request-ID response header.
type Adapter struct {
	timeout time.Duration
}

func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{timeout: timeout}
}

// Attach returns a deadline-bound context carrying the request ID. The caller
// owns the cancel func.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	id := requestID(ctx)
	ctx.Response.Header.Set("X-Request-ID", id)
	return logger.ContextWithRequestID(stdCtx, id), cancel
}

// requestID honors an incoming X-Request-ID so IDs survive proxy hops,
// otherwise mints a fresh one.
func requestID(ctx *fasthttp.RequestCtx) string {
	if ctx != nil {
		if id := strings.TrimSpace(string(ctx.Request.Header.Peek("X-Request-ID"))); id != "" {
			return id
		}
	}
	return uuid.NewString()
}
