package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

type Span string

type spanKeyType struct{}

var SpanKey spanKeyType

type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {

		// creator
		var creatorSpan Span
		if v := ctx.Value(SpanKey); v != nil {
			creatorSpan = v.(Span)
		}
		if parent == "" {
			parent = creatorSpan
		}

		// span
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		// spans of a one-shot interpreter run are debugging aids only
		var args []any
		if creatorSpan != "" && creatorSpan != parent {
			args = append(args, "creator", creatorSpan)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}

func WrapSpan(ctx context.Context, err error) error {
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	err = errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
	return err
}
