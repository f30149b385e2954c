package strcase

import (
	"context"
	"strconv"

	"github.com/dmitrymomot/strx/pkg/memo"
	"github.com/dmitrymomot/strx/pkg/slug"
)

// DefaultDelimiter is the snake case delimiter used by SnakeSafe.
const DefaultDelimiter = "_"

// Converter applies the casing transforms and memoizes their results.
// It is safe for concurrent use.
type Converter struct {
	store memo.Store
}

// Option configures a Converter.
type Option func(*Converter)

// WithStore sets the memo store. A nil store disables memoization.
// Default: memo.NewMemory(memo.DefaultMaxEntries).
func WithStore(s memo.Store) Option {
	return func(c *Converter) {
		c.store = s
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{store: memo.NewMemory(memo.DefaultMaxEntries)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snake converts value to snake case joined by delimiter.
//
//	c.Snake(ctx, "HelloWorld", "_") // "hello_world"
//	c.Snake(ctx, "HTTPServer", "_") // "h_t_t_p_server"
//
// Only ASCII letters are considered: existing spaces are kept, so
// "Hello World" becomes "hello _world".
func (c *Converter) Snake(ctx context.Context, value, delimiter string) string {
	return memo.Do(ctx, c.store, snakeKey(value, delimiter), func() string {
		return snake(value, delimiter)
	})
}

// snakeKey length-prefixes the delimiter so no two (value, delimiter)
// pairs share a key.
func snakeKey(value, delimiter string) string {
	return "snake:" + strconv.Itoa(len(delimiter)) + ":" + delimiter + value
}

// Studly converts value to StudlyCase and memoizes the result.
//
//	c.Studly(ctx, "hello-world_test") // "HelloWorldTest"
func (c *Converter) Studly(ctx context.Context, value string) string {
	return memo.Do(ctx, c.store, "studly:"+value, func() string {
		return studly(value)
	})
}

// Camel converts value to camelCase: "hello_world" becomes "helloWorld".
func (c *Converter) Camel(ctx context.Context, value string) string {
	return memo.Do(ctx, c.store, "camel:"+value, func() string {
		return camel(value)
	})
}

// SnakeSafe snake-cases title with "_" and passes the result through
// slug.Slugify with separator, yielding an identifier of [a-z0-9] and separator.
func (c *Converter) SnakeSafe(ctx context.Context, title, separator string) string {
	return slug.Slugify(c.Snake(ctx, title, DefaultDelimiter), separator)
}

// Close releases the underlying store.
func (c *Converter) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

var std = New()

// Snake converts value to snake case using the shared converter.
func Snake(value, delimiter string) string {
	return std.Snake(context.Background(), value, delimiter)
}

// Studly converts value to StudlyCase using the shared converter.
func Studly(value string) string {
	return std.Studly(context.Background(), value)
}

// Camel converts value to camelCase using the shared converter.
func Camel(value string) string {
	return std.Camel(context.Background(), value)
}

// SnakeSafe returns a slug-safe snake case identifier for title.
// An empty separator selects DefaultDelimiter.
func SnakeSafe(title, separator string) string {
	if separator == "" {
		separator = DefaultDelimiter
	}
	return std.SnakeSafe(context.Background(), title, separator)
}
