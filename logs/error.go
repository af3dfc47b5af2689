package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the current span id to err so failures can be
// correlated with the log stream.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
