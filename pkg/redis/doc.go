// Package redis opens go-redis clients for the shared memo store.
//
// Open validates the URL scheme (redis:// or rediss://), applies small pool
// defaults suited to cache lookups, and retries PING with a linear backoff
// before handing the client back:
//
//	client, err := redis.Open(ctx, "redis://localhost:6379/0",
//		redis.WithPoolSize(8),
//		redis.WithRetry(5, time.Second),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := memo.NewRedis(client, memo.WithPrefix("strx"))
//
// Ping can be used later to check that the server is still reachable.
//
// Failures are reported with the sentinel errors [ErrEmptyURL],
// [ErrInvalidURL], [ErrUnreachable], [ErrPingFailed] and [ErrNilClient],
// joined with the underlying cause.
package redis
