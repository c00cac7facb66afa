package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("cache closed")

// transientError marks a Redis failure worth another attempt: a dropped
// connection or a timeout while a replica is failing over.
type transientError struct{ err error }

func (e transientError) Error() string { return e.err.Error() }
func (e transientError) Unwrap() error { return e.err }

// classifyRedis maps a go-redis error onto the cache's failure kinds.
// redis.Nil is not an error here; callers check it first.
func classifyRedis(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.ErrClosed):
		return ErrClosed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return transientError{err}
}

func isTransient(err error) bool {
	var te transientError
	return errors.As(err, &te)
}

const redisAttempts = 3

// redisBackoff is the first pause between Redis attempts; it doubles.
var redisBackoff = 100 * time.Millisecond

// retryRedis runs op until it succeeds, fails permanently, or exhausts
// redisAttempts. A chart lookup waits at most 300ms before the runner
// treats the cache as a miss and renders.
func retryRedis(ctx context.Context, op func() error) error {
	delay := redisBackoff
	var err error
	for i := 0; i < redisAttempts; i++ {
		if err = op(); err == nil || !isTransient(err) {
			return err
		}
		if i == redisAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}
