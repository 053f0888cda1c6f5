package endpointutil

import (
	"context"
	"time"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/request"
)

type contextKey string

const (
	contextKeyRequestContext contextKey = "endpoint/requestContext"
	contextKeyError          contextKey = "endpoint/error"
)

func RequestContext(ctx context.Context) request.Context {
	rc := ctx.Value(contextKeyRequestContext)
	if rc == nil {
		return nil
	}
	return rc.(request.Context)
}

func StoreRequestContext(ctx context.Context, rc request.Context) context.Context {
	return context.WithValue(ctx, contextKeyRequestContext, rc)
}

func StoreError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, contextKeyError, err)
}

func Error(ctx context.Context) error {
	v := ctx.Value(contextKeyError)
	if v == nil {
		return nil
	}

	return v.(error)
}

// MakeAnonymousRequestContext builds a request context whose log carries
// lctx: handlers fill lctx and every following log line includes it.
func MakeAnonymousRequestContext(ctx context.Context, hctx *HandlerRegContext) *request.AnonymousContext {
	lctx := logutil.Context{}
	log := hctx.Log
	log = logutil.WrapLogWithContext(log, lctx)
	log = apperrors.WrapLogWithTracker(log, lctx, hctx.ErrTracker)

	return &request.AnonymousContext{
		BaseContext: request.BaseContext{
			Ctx:       ctx,
			Log:       log,
			Lctx:      lctx,
			DB:        hctx.DB,
			StartedAt: time.Now(),
		},
	}
}
