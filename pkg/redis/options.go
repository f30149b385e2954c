package redis

import "time"

// Option configures the client created by Open.
type Option func(*options)

type options struct {
	poolSize    int
	attempts    int
	backoff     time.Duration
	dialTimeout time.Duration
	ioTimeout   time.Duration
}

func defaultOptions() *options {
	return &options{
		poolSize:    4,
		attempts:    3,
		backoff:     500 * time.Millisecond,
		dialTimeout: 2 * time.Second,
		ioTimeout:   time.Second,
	}
}

// WithPoolSize sets the maximum number of pooled connections.
// Memo lookups are small and short, so the default is 4.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithRetry sets how many times Open pings the server and the base delay
// between attempts. The delay grows linearly with each attempt.
// Default: 3 attempts, 500ms.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(o *options) {
		o.attempts = attempts
		o.backoff = backoff
	}
}

// WithTimeouts sets the dial timeout and the read/write timeout.
// Default: 2s dial, 1s read/write.
func WithTimeouts(dial, io time.Duration) Option {
	return func(o *options) {
		o.dialTimeout = dial
		o.ioTimeout = io
	}
}
