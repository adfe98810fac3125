package wallet

import (
	"context"
	"errors"
	"sync"
)

// awaitCallback turns an onFinish/onCancel/onError style SDK call into a
// single blocking completion point. Only the first callback counts; later
// ones are ignored. If ctx ends first, the SDK call is abandoned.
func awaitCallback[T any](ctx context.Context, start func(onFinish func(T), onCancel func(), onError func(error))) (T, error) {
	type outcome struct {
		v   T
		err error
	}

	done := make(chan outcome, 1)
	var once sync.Once
	settle := func(o outcome) {
		once.Do(func() { done <- o })
	}

	start(
		func(v T) { settle(outcome{v: v}) },
		func() { settle(outcome{err: ErrUserCancelled}) },
		func(err error) {
			if err == nil {
				err = errors.New("wallet reported an unspecified error")
			}
			settle(outcome{err: err})
		},
	)

	select {
	case o := <-done:
		return o.v, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
