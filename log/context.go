package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// CtxWithFields stores a logger with `fields` in a child of `ctx`.
// Fields already stored in `ctx` are kept.
func CtxWithFields(ctx context.Context, fields logrus.Fields) (context.Context, *logrus.Entry) {
	entry := FromCtx(ctx).WithFields(fields)

	ctx = context.WithValue(ctx, ctxKey{}, entry)

	return ctx, withCtx(ctx, entry)
}

// FromCtx returns the logger stored in `ctx` or the global one
func FromCtx(ctx context.Context) *logrus.Entry {
	entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry)
	if !ok {
		return logrus.NewEntry(Log()).WithContext(ctx)
	}

	return withCtx(ctx, entry)
}

// withCtx binds a copy of `entry` to `ctx`, which may be a child of the context it was stored in
func withCtx(ctx context.Context, entry *logrus.Entry) *logrus.Entry {
	res := *entry
	res.Context = ctx

	return &res
}
