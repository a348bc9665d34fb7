package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// SeriesParser yields the items of a list one at a time.
type SeriesParser[T any] interface {
	// Next returns the next item.
	//
	// The end of the series is reported as `io.EOF`. Errors of type
	// `NonResumableError` end the series as well, any other error only
	// concerns the current item.
	Next(context.Context) (T, error)

	// Position tells the user where the last item was read, e.g. "line 12".
	Position() string
}

// ForEach calls `callback` for every item of `parser` until the first error.
//
// Reaching the end of the series is not an error. Other errors are prefixed
// with the parser's position.
func ForEach[T any](ctx context.Context, parser SeriesParser[T], callback func(T) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return withPosition(parser, err)
		}

		item, err := parser.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err == nil {
			err = callback(item)
		}

		if err != nil {
			return withPosition(parser, err)
		}
	}
}

func withPosition[T any](parser SeriesParser[T], err error) error {
	return fmt.Errorf("%s: %w", parser.Position(), err)
}

// NonResumableError ends a series, no more items can be read after it.
type NonResumableError struct {
	inner error
}

// NewNonResumableError wraps `inner` as `NonResumableError`.
func NewNonResumableError(inner error) error {
	return &NonResumableError{inner}
}

// IsNonResumableErr reports if `err` ends the series.
func IsNonResumableErr(err error) bool {
	var target *NonResumableError

	return errors.As(err, &target)
}

func (e *NonResumableError) Error() string {
	return "non resumable parse error: " + e.inner.Error()
}

func (e *NonResumableError) Unwrap() error {
	return e.inner
}
