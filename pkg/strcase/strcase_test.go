package strcase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strx/pkg/memo"
	"github.com/dmitrymomot/strx/pkg/strcase"
)

func TestSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		delim    string
		expected string
	}{
		{name: "studly", input: "HelloWorld", delim: "_", expected: "hello_world"},
		{name: "custom delimiter", input: "HelloWorld", delim: "-", expected: "hello-world"},
		{name: "acronym splits per letter", input: "HTTPServer", delim: "_", expected: "h_t_t_p_server"},
		{name: "mixed acronym", input: "XMLHttpRequest", delim: "_", expected: "x_m_l_http_request"},
		{name: "camel", input: "userID", delim: "_", expected: "user_i_d"},
		{name: "lowercase unchanged", input: "hello", delim: "_", expected: "hello"},
		{name: "already snake", input: "already_snake", delim: "_", expected: "already_snake"},
		{name: "spaces kept", input: "Hello World", delim: "_", expected: "hello _world"},
		{name: "no delimiter after newline", input: "Line\nBreak", delim: "_", expected: "line\nbreak"},
		{name: "non-ascii letters untouched", input: "ÉcoleNormale", delim: "_", expected: "École_normale"},
		{name: "empty", input: "", delim: "_", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strcase.Snake(tt.input, tt.delim))
		})
	}
}

func TestStudlyAndCamel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		studly string
		camel  string
	}{
		{input: "hello-world_test", studly: "HelloWorldTest", camel: "helloWorldTest"},
		{input: "hello_world", studly: "HelloWorld", camel: "helloWorld"},
		{input: "hello world", studly: "HelloWorld", camel: "helloWorld"},
		{input: "a--b", studly: "AB", camel: "aB"},
		{input: "__x__", studly: "X", camel: "x"},
		{input: "-leading", studly: "Leading", camel: "leading"},
		{input: "HTTP_server", studly: "HTTPServer", camel: "hTTPServer"},
		{input: "foo\tbar", studly: "Foo\tBar", camel: "foo\tBar"},
		{input: "élan vital", studly: "élanVital", camel: "élanVital"},
		{input: "", studly: "", camel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.studly, strcase.Studly(tt.input))
			assert.Equal(t, tt.camel, strcase.Camel(tt.input))
		})
	}
}

func TestSnakeSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{name: "title", input: "Hello World", sep: "_", expected: "hello_world"},
		{name: "default separator", input: "Hello World", sep: "", expected: "hello_world"},
		{name: "dash separator", input: "Hello World", sep: "-", expected: "hello-world"},
		{name: "transliterated", input: "ÜberCool Straße", sep: "_", expected: "uber_cool_strasse"},
		{name: "acronym", input: "HTTPServer", sep: "_", expected: "h_t_t_p_server"},
		{name: "surrounding spaces", input: "  Spaced  Out  ", sep: "_", expected: "spaced_out"},
		{name: "punctuation dropped", input: "Price: $99.99", sep: "_", expected: "price_9999"},
		{name: "snake to dashes", input: "already_snake", sep: "-", expected: "already-snake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, strcase.SnakeSafe(tt.input, tt.sep))
		})
	}
}

// countingStore records how many values were written.
type countingStore struct {
	*memo.Memory
	mu   sync.Mutex
	sets int
}

func (s *countingStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.sets++
	s.mu.Unlock()
	return s.Memory.Set(ctx, key, value)
}

type brokenStore struct{}

var errBroken = errors.New("broken")

func (brokenStore) Get(context.Context, string) (string, error) { return "", errBroken }
func (brokenStore) Set(context.Context, string, string) error   { return errBroken }
func (brokenStore) Clear(context.Context) error                 { return errBroken }
func (brokenStore) Close() error                                { return errBroken }

func TestConverter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("memoizes per operation and delimiter", func(t *testing.T) {
		t.Parallel()

		store := &countingStore{Memory: memo.NewMemory(16)}
		c := strcase.New(strcase.WithStore(store))

		require.Equal(t, "hello_world", c.Snake(ctx, "HelloWorld", "_"))
		require.Equal(t, "hello_world", c.Snake(ctx, "HelloWorld", "_"))
		require.Equal(t, "hello-world", c.Snake(ctx, "HelloWorld", "-"))
		require.Equal(t, "HelloWorld", c.Studly(ctx, "hello_world"))
		require.Equal(t, "helloWorld", c.Camel(ctx, "hello_world"))
		require.Equal(t, "helloWorld", c.Camel(ctx, "hello_world"))

		assert.Equal(t, 4, store.sets)
		assert.Equal(t, 4, store.Len())

		v, err := store.Get(ctx, "snake:1:-HelloWorld")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", v)
	})

	t.Run("delimiter and value never share a key", func(t *testing.T) {
		t.Parallel()

		c := strcase.New(strcase.WithStore(memo.NewMemory(16)))
		assert.Equal(t, "x::y", c.Snake(ctx, "x:Y", ":"))
		assert.Equal(t, ":x:y", c.Snake(ctx, ":x:Y", ""))
		assert.Equal(t, "x::y", c.Snake(ctx, "x:Y", ":"))
	})

	t.Run("broken store still yields correct results", func(t *testing.T) {
		t.Parallel()

		c := strcase.New(strcase.WithStore(brokenStore{}))
		assert.Equal(t, "hello_world", c.Snake(ctx, "HelloWorld", "_"))
		assert.Equal(t, "HelloWorldTest", c.Studly(ctx, "hello-world_test"))
		assert.Equal(t, "helloWorld", c.Camel(ctx, "hello_world"))
		assert.Equal(t, "hello_world", c.SnakeSafe(ctx, "Hello World", "_"))
		assert.ErrorIs(t, c.Close(), errBroken)
	})

	t.Run("nil store disables memoization", func(t *testing.T) {
		t.Parallel()

		c := strcase.New(strcase.WithStore(nil))
		assert.Equal(t, "hello_world", c.Snake(ctx, "HelloWorld", "_"))
		assert.NoError(t, c.Close())
	})

	t.Run("closed store falls back to computing", func(t *testing.T) {
		t.Parallel()

		c := strcase.New()
		require.NoError(t, c.Close())
		assert.Equal(t, "hello_world", c.Snake(ctx, "HelloWorld", "_"))
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()

		c := strcase.New(strcase.WithStore(memo.NewMemory(4)))
		inputs := []string{"HelloWorld", "FooBar", "BazQux", "OneTwo", "ThreeFour", "FiveSix"}
		want := []string{"hello_world", "foo_bar", "baz_qux", "one_two", "three_four", "five_six"}

		var wg sync.WaitGroup
		for i := range 60 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n := i % len(inputs)
				assert.Equal(t, want[n], c.Snake(ctx, inputs[n], "_"))
			}()
		}
		wg.Wait()
	})
}

func BenchmarkSnake(b *testing.B) {
	ctx := context.Background()

	b.Run("memoized", func(b *testing.B) {
		c := strcase.New()
		for b.Loop() {
			_ = c.Snake(ctx, "SomeFairlyLongIdentifierName", "_")
		}
	})

	b.Run("uncached", func(b *testing.B) {
		c := strcase.New(strcase.WithStore(nil))
		for b.Loop() {
			_ = c.Snake(ctx, "SomeFairlyLongIdentifierName", "_")
		}
	})
}
