package slug

import (
	"crypto/rand"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrymomot/strx/pkg/sanitizer"
	"github.com/dmitrymomot/strx/pkg/translit"
)

// DefaultSeparator is used by Make when no Separator option is given.
const DefaultSeparator = "-"

const defaultSuffixLength = 6

// pipeline holds the regular expressions for one separator.
type pipeline struct {
	flip     *regexp.Regexp
	strip    *regexp.Regexp
	collapse *regexp.Regexp
}

// pipelines caches compiled patterns keyed by separator.
var pipelines sync.Map

func pipelineFor(sep string) *pipeline {
	if p, ok := pipelines.Load(sep); ok {
		return p.(*pipeline)
	}

	// Dashes and underscores are interchangeable word breaks: whichever one
	// is not the separator gets folded into it.
	flip := "-"
	if sep == "-" {
		flip = "_"
	}

	q := quoteClass(sep)
	p := &pipeline{
		flip:     regexp.MustCompile(`[` + quoteClass(flip) + `]+`),
		strip:    regexp.MustCompile(`[^` + q + `\pL\pN\s]+`),
		collapse: regexp.MustCompile(`[` + q + `\s]+`),
	}

	actual, _ := pipelines.LoadOrStore(sep, p)
	return actual.(*pipeline)
}

// quoteClass escapes s for use inside a regexp character class.
func quoteClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf && !isAlnum(byte(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Slugify converts input into a URL-safe ASCII slug joined by sep.
//
// The input is transliterated to ASCII, dashes and underscores are unified to
// sep, the result is lowercased, everything except sep, letters, digits and
// whitespace is removed, runs of sep and whitespace collapse to a single sep,
// and sep is trimmed from both ends. Empty or fully stripped input yields "".
func Slugify(input, sep string) string {
	if input == "" {
		return ""
	}

	p := pipelineFor(sep)

	s := translit.ASCII(input)
	s = p.flip.ReplaceAllLiteralString(s, sep)
	s = strings.ToLower(s)
	s = p.strip.ReplaceAllLiteralString(s, "")
	s = p.collapse.ReplaceAllLiteralString(s, sep)

	return strings.Trim(s, sep)
}

// Make generates a slug from s. Without options it is equivalent to
// Slugify(s, DefaultSeparator).
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.stripHTML {
		s = sanitizer.StripTags(s)
	}
	s = o.replace(s)

	out := Slugify(s, o.separator)

	suffixLen := o.suffixLength
	if suffixLen <= 0 && o.isReserved(out) {
		suffixLen = defaultSuffixLength
	}

	if suffixLen > 0 {
		if o.maxLength > 0 {
			room := o.maxLength - utf8.RuneCountInString(o.separator) - suffixLen
			out = cut(out, room, o.separator)
		}
		if out == "" {
			out = randomSuffix(suffixLen)
		} else {
			out += o.separator + randomSuffix(suffixLen)
		}
	}

	if o.maxLength > 0 {
		out = cut(out, o.maxLength, o.separator)
	}
	return out
}

// cut keeps at most n runes of s and trims separators left dangling at the end.
// A non-positive n yields "".
func cut(s string, n int, sep string) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	out := string(runes[:n])
	if sep != "" {
		out = strings.TrimRight(out, sep)
	}
	return out
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomSuffix returns n random runes from [a-z0-9].
func randomSuffix(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	for i, c := range buf {
		buf[i] = suffixAlphabet[int(c)%len(suffixAlphabet)]
	}
	return string(buf)
}

// replace applies custom replacements in sorted key order so results
// do not depend on map iteration.
func (o *options) replace(s string) string {
	if len(o.replacements) == 0 {
		return s
	}
	for _, k := range slices.Sorted(maps.Keys(o.replacements)) {
		if k == "" {
			continue
		}
		s = strings.ReplaceAll(s, k, o.replacements[k])
	}
	return s
}

func (o *options) isReserved(s string) bool {
	if len(o.reserved) == 0 || s == "" {
		return false
	}
	_, ok := o.reserved[strings.ToLower(s)]
	return ok
}
