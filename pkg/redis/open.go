package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Open parses a redis:// or rediss:// URL, dials the server and verifies it
// answers PING before returning the client.
//
// Example:
//
//	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithRetry(5, time.Second))
//	if err != nil {
//		return err
//	}
//	defer client.Close()
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrInvalidURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ro, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	ro.PoolSize = o.poolSize
	ro.DialTimeout = o.dialTimeout
	ro.ReadTimeout = o.ioTimeout
	ro.WriteTimeout = o.ioTimeout

	client := redis.NewClient(ro)

	var lastErr error
	for i := range max(o.attempts, 1) {
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		if i == max(o.attempts, 1)-1 {
			break
		}
		if err := sleep(ctx, time.Duration(i+1)*o.backoff); err != nil {
			_ = client.Close()
			return nil, errors.Join(ErrUnreachable, err)
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrUnreachable, lastErr)
}

// Ping reports whether client answers PING.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	if client == nil {
		return ErrNilClient
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrPingFailed, err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
