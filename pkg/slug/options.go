package slug

import "strings"

// Option configures slug generation.
type Option func(*options)

type options struct {
	replacements map[string]string
	reserved     map[string]struct{}
	separator    string
	maxLength    int
	suffixLength int
	stripHTML    bool
}

func defaultOptions() *options {
	return &options{
		separator: DefaultSeparator,
	}
}

// Separator sets the character placed between words.
// Dashes and underscores in the input are folded into it.
// Default: "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// MaxLength limits the slug length in runes. A separator left at the cut
// point is trimmed. Zero means unlimited.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = max(n, 0)
	}
}

// CustomReplace applies literal string replacements before transliteration.
// Keys are applied in sorted order.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		if o.replacements == nil {
			o.replacements = make(map[string]string, len(replacements))
		}
		for k, v := range replacements {
			o.replacements[k] = v
		}
	}
}

// StripHTML removes HTML markup and decodes entities before slugging.
func StripHTML() Option {
	return func(o *options) {
		o.stripHTML = true
	}
}

// WithSuffix appends a random [a-z0-9] suffix of n runes for uniqueness.
// With MaxLength set, the base slug is shortened to make room for it.
func WithSuffix(n int) Option {
	return func(o *options) {
		o.suffixLength = max(n, 0)
	}
}

// ReservedSlugs marks slugs that must not be returned as-is (case-insensitive).
// A reserved result gets a random suffix (6 runes unless WithSuffix is set).
func ReservedSlugs(slugs ...string) Option {
	return func(o *options) {
		if o.reserved == nil {
			o.reserved = make(map[string]struct{}, len(slugs))
		}
		for _, s := range slugs {
			o.reserved[strings.ToLower(s)] = struct{}{}
		}
	}
}
