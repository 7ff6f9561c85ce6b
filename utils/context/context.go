package context

import (
	"context"

	"github.com/muhammadheryan/pendaftaran/constant"
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
