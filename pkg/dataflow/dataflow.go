// Package dataflow runs per-item work over a channel with a bounded worker pool.
package dataflow

import (
	"context"
	"sync"
	"time"
)

// Stream is a read-only channel of messages.
type Stream <-chan interface{}

// From creates a stream from a slice of data.
func From(ctx context.Context, items ...interface{}) Stream {
	out := make(chan interface{}, len(items))
	go func() {
		defer close(out)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case out <- item:
			}
		}
	}()
	return out
}

// ForEach calls fn for every item in the stream and blocks until the stream
// is drained. The first unhandled error stops the remaining workers and is
// returned.
func ForEach(ctx context.Context, input Stream, fn func(context.Context, interface{}) error, opts ...Option) error {
	cfg := buildConfig(opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-input:
				if !ok {
					return
				}
				err := attempt(ctx, cfg, func() error { return fn(ctx, msg) })
				if err == nil {
					continue
				}
				if cfg.errorHandler != nil && cfg.errorHandler(err) {
					continue
				}
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
		}
	}

	wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go worker()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func attempt(ctx context.Context, cfg *config, call func() error) error {
	err := call()
	for i := 1; err != nil && i <= cfg.maxRetries; i++ {
		if cfg.backoff != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.backoff(i)):
			}
		}
		err = call()
	}
	return err
}
