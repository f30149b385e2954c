package jsonsniff_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strx/pkg/jsonsniff"
)

func newSniffer(t *testing.T, opts ...jsonsniff.Option) (*jsonsniff.Sniffer, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return jsonsniff.New(append([]jsonsniff.Option{jsonsniff.WithLogger(log)}, opts...)...), &buf
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("decodes object", func(t *testing.T) {
		t.Parallel()

		m, err := jsonsniff.Parse(`{"a":1}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, m)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		t.Parallel()

		m, err := jsonsniff.Parse("  \n{\"ok\": false, \"v\": null}\t ")
		require.NoError(t, err)
		assert.Equal(t, false, m["ok"])
		assert.Contains(t, m, "v")
		assert.Nil(t, m["v"])
	})

	t.Run("nested values", func(t *testing.T) {
		t.Parallel()

		m, err := jsonsniff.Parse(`{"list":[1,"two",{"three":3}],"s":"}{]["}`)
		require.NoError(t, err)
		assert.Equal(t, "}{][", m["s"])
		assert.Len(t, m["list"], 3)
	})
}

func TestFailureKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		kind     jsonsniff.Kind
		sentinel error
		message  string
	}{
		{name: "not json", input: "not json", kind: jsonsniff.GuardFailed, sentinel: jsonsniff.ErrGuardFailed, message: "does not start or end properly"},
		{name: "array is guarded out", input: "[1,2]", kind: jsonsniff.GuardFailed, sentinel: jsonsniff.ErrGuardFailed, message: "does not start or end properly"},
		{name: "empty", input: "", kind: jsonsniff.GuardFailed, sentinel: jsonsniff.ErrGuardFailed, message: "does not start or end properly"},
		{name: "unquoted key", input: "{invalid}", kind: jsonsniff.SyntaxError, sentinel: jsonsniff.ErrSyntax, message: "syntax error"},
		{name: "trailing comma", input: `{"a":1,}`, kind: jsonsniff.SyntaxError, sentinel: jsonsniff.ErrSyntax, message: "syntax error"},
		{name: "unclosed inner object", input: `{"a":{"b":1}`, kind: jsonsniff.SyntaxError, sentinel: jsonsniff.ErrSyntax, message: "syntax error"},
		{name: "bracket mismatch", input: `{"a":[1}`, kind: jsonsniff.StateMismatch, sentinel: jsonsniff.ErrStateMismatch, message: "underflow or the modes mismatch"},
		{name: "bracket underflow", input: `{"a":1}}`, kind: jsonsniff.StateMismatch, sentinel: jsonsniff.ErrStateMismatch, message: "underflow or the modes mismatch"},
		{name: "raw newline in string", input: "{\"a\":\"x\ny\"}", kind: jsonsniff.ControlCharacter, sentinel: jsonsniff.ErrControlCharacter, message: "unexpected control character"},
		{name: "invalid utf-8", input: "{\"a\":\"\xff\"}", kind: jsonsniff.InvalidEncoding, sentinel: jsonsniff.ErrInvalidEncoding, message: "malformed utf-8"},
		{name: "too deep", input: `{"a":` + strings.Repeat("[", 600) + strings.Repeat("]", 600) + `}`, kind: jsonsniff.DepthExceeded, sentinel: jsonsniff.ErrDepthExceeded, message: "maximum stack depth exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, buf := newSniffer(t)
			m, err := s.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, m)

			var se *jsonsniff.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.kind, se.Kind)
			assert.Equal(t, tt.kind, jsonsniff.KindOf(err))
			assert.ErrorIs(t, err, tt.sentinel)

			out := buf.String()
			assert.Equal(t, 1, strings.Count(out, "\n"), "exactly one log line, got %q", out)
			assert.Contains(t, out, "level=DEBUG")
			assert.Contains(t, out, tt.message)
			assert.Contains(t, out, "kind="+tt.kind.String())
		})
	}
}

func TestSyntaxErrorWrapsDecoderError(t *testing.T) {
	t.Parallel()

	_, err := jsonsniff.Parse("{invalid}")

	var syn *json.SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.Contains(t, err.Error(), "malformed json")
}

func TestDecode(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("into struct", func(t *testing.T) {
		t.Parallel()

		var p payload
		require.NoError(t, jsonsniff.Decode(`{"name":"x","count":3}`, &p))
		assert.Equal(t, payload{Name: "x", Count: 3}, p)
	})

	t.Run("type mismatch is unknown", func(t *testing.T) {
		t.Parallel()

		s, buf := newSniffer(t)
		var p payload
		err := s.Decode(`{"count":"three"}`, &p)
		require.Error(t, err)
		assert.Equal(t, jsonsniff.Unknown, jsonsniff.KindOf(err))
		assert.ErrorIs(t, err, jsonsniff.ErrUnknown)
		assert.Contains(t, buf.String(), "unknown error")
	})
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, jsonsniff.Valid(`{"a":[true,false,null]}`))
	assert.NoError(t, jsonsniff.Valid(`{}`))
	assert.Equal(t, jsonsniff.SyntaxError, jsonsniff.KindOf(jsonsniff.Valid(`{"a":}`)))
	assert.Equal(t, jsonsniff.GuardFailed, jsonsniff.KindOf(jsonsniff.Valid(`"string"`)))
}

func TestWithMaxDepth(t *testing.T) {
	t.Parallel()

	nested := `{"a":{"b":{"c":1}}}`

	s, _ := newSniffer(t, jsonsniff.WithMaxDepth(3))
	require.NoError(t, s.Valid(nested))

	s, _ = newSniffer(t, jsonsniff.WithMaxDepth(2))
	assert.Equal(t, jsonsniff.DepthExceeded, jsonsniff.KindOf(s.Valid(nested)))

	s, _ = newSniffer(t, jsonsniff.WithMaxDepth(0))
	require.NoError(t, s.Valid(nested))
}

func TestClassificationOrder(t *testing.T) {
	t.Parallel()

	// Mismatch wins over a control character and excessive depth.
	in := "{\"a\":\"x\ty\"," + strings.Repeat("[", 5) + "}"
	s, _ := newSniffer(t, jsonsniff.WithMaxDepth(2))
	assert.Equal(t, jsonsniff.StateMismatch, jsonsniff.KindOf(s.Valid(in)))

	// Control character wins over depth.
	in = "{\"a\":\"x\ty\",\"b\":[[[1]]]}"
	assert.Equal(t, jsonsniff.ControlCharacter, jsonsniff.KindOf(s.Valid(in)))
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GuardFailed", jsonsniff.GuardFailed.String())
	assert.Equal(t, "Unknown", jsonsniff.Kind(99).String())
	assert.Equal(t, jsonsniff.Unknown, jsonsniff.KindOf(errors.New("other")))
	assert.Equal(t, jsonsniff.Unknown, jsonsniff.KindOf(nil))
}
