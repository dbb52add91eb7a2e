package service

import (
	"context"

	"timesheet-bot/pkg/workerpool"
)

type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync runs fn on the pool and waits for its result or for ctx.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{
		Fn:      fn,
		ResultC: resCh,
	}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
