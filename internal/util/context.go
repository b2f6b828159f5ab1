package util

import "context"

type operatorKey struct{}

// WithOperatorID tags a request context with the acting operator.
func WithOperatorID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, operatorKey{}, id)
}

// OperatorIDFromContext returns the acting operator, or 0 for system work.
func OperatorIDFromContext(ctx context.Context) uint {
	id, _ := ctx.Value(operatorKey{}).(uint)
	return id
}
