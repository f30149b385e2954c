package jsonsniff

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultMaxDepth is the deepest object/array nesting accepted by default.
const DefaultMaxDepth = 512

// Option configures a Sniffer.
type Option func(*Sniffer)

// WithLogger sets the logger that receives one debug line per failure.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Sniffer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxDepth sets the maximum nesting of objects and arrays.
// Non-positive values keep DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(s *Sniffer) {
		if n > 0 {
			s.maxDepth = n
		}
	}
}

// Sniffer decodes strings that look like JSON objects and reports failures
// as *Error values tagged with a Kind.
type Sniffer struct {
	logger   *slog.Logger
	maxDepth int
}

// New creates a Sniffer.
func New(opts ...Option) *Sniffer {
	s := &Sniffer{
		logger:   slog.Default(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse decodes str into a generic object. Numbers become float64.
func (s *Sniffer) Parse(str string) (map[string]any, error) {
	var out map[string]any
	if err := s.decode(str, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode decodes str into v, which must be a non-nil pointer.
func (s *Sniffer) Decode(str string, v any) error {
	return s.decode(str, v)
}

// Valid reports whether str would decode, returning the same *Error as Parse.
func (s *Sniffer) Valid(str string) error {
	var raw json.RawMessage
	return s.decode(str, &raw)
}

func (s *Sniffer) decode(str string, v any) error {
	trimmed := strings.TrimSpace(str)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return s.fail(GuardFailed, nil)
	}

	if !utf8.ValidString(trimmed) {
		return s.fail(InvalidEncoding, nil)
	}

	res := scan(trimmed, s.maxDepth)
	switch {
	case res.mismatch:
		return s.fail(StateMismatch, nil)
	case res.controlChar:
		return s.fail(ControlCharacter, nil)
	case res.tooDeep:
		return s.fail(DepthExceeded, nil)
	}

	if err := json.Unmarshal([]byte(trimmed), v); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return s.fail(SyntaxError, err)
		}
		return s.fail(Unknown, err)
	}
	return nil
}

var failureMessages = map[Kind]string{
	GuardFailed:      "json sniff: string does not start or end properly",
	DepthExceeded:    "json sniff: maximum stack depth exceeded",
	StateMismatch:    "json sniff: underflow or the modes mismatch",
	ControlCharacter: "json sniff: unexpected control character found",
	SyntaxError:      "json sniff: syntax error, malformed json",
	InvalidEncoding:  "json sniff: malformed utf-8 characters, possibly incorrectly encoded",
	Unknown:          "json sniff: unknown error",
}

func (s *Sniffer) fail(kind Kind, cause error) error {
	attrs := []any{slog.String("kind", kind.String())}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	s.logger.Debug(failureMessages[kind], attrs...)

	return &Error{Kind: kind, Err: cause}
}

// Parse decodes str with a default Sniffer.
func Parse(str string) (map[string]any, error) {
	return New().Parse(str)
}

// Decode decodes str into v with a default Sniffer.
func Decode(str string, v any) error {
	return New().Decode(str, v)
}

// Valid checks str with a default Sniffer.
func Valid(str string) error {
	return New().Valid(str)
}
