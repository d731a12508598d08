package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every item, at most limit at a time (no limit when
// limit <= 0). The context passed to action is canceled on the first error,
// which is returned once all started actions finished.
func ForEach[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, item := range items {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			return action(groupCtx, item)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map is ForEach that keeps one result per item, in input order.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}

	err := ForEach(ctx, indexes, limit, func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
