package request

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
)

type Context interface {
	RequestStartedAt() time.Time
	Logger() logutil.Log
}

type BaseContext struct {
	Ctx  context.Context
	Log  logutil.Log
	Lctx logutil.Context
	DB   *gorm.DB

	StartedAt time.Time
}

func (ctx BaseContext) RequestStartedAt() time.Time {
	return ctx.StartedAt
}

func (ctx BaseContext) Logger() logutil.Log {
	return ctx.Log
}

// AnonymousContext is the context of a request without a user session:
// webhooks authenticate by signature, the read API is public.
type AnonymousContext struct {
	BaseContext
}
