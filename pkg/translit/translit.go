package translit

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Rule maps a set of source sequences to a single ASCII token.
type Rule struct {
	Token   string
	Sources []string
}

// Table is the ordered list of rules. Position defines priority.
type Table []Rule

// Lookup returns a copy of the complete transliteration table in definition order.
// Modifying the returned table does not affect folding.
func Lookup() Table {
	t := make(Table, len(rules))
	for i, r := range rules {
		t[i] = Rule{Token: r.Token, Sources: slices.Clone(r.Sources)}
	}
	return t
}

// Len returns the total number of source sequences across all rules.
func (t Table) Len() int {
	n := 0
	for _, r := range t {
		n += len(r.Sources)
	}
	return n
}

// replacer is built once from the rules in definition order.
// strings.Replacer compares candidates in argument order at each position,
// which gives the same result as one full replacement pass per source.
var replacer = sync.OnceValue(func() *strings.Replacer {
	oldnew := make([]string, 0, 2*Table(rules).Len())
	for _, r := range rules {
		for _, src := range r.Sources {
			oldnew = append(oldnew, src, r.Token)
		}
	}
	return strings.NewReplacer(oldnew...)
})

var nonPrintable = runes.Remove(runes.Predicate(func(r rune) bool {
	return r < 0x20 || r > 0x7e
}))

// ASCII folds s to printable ASCII.
//
// Every table source found in s is replaced by its token, then every rune
// outside the 0x20-0x7E range is dropped, including control characters
// and invalid UTF-8 bytes.
func ASCII(s string) string {
	if isPrintableASCII(s) {
		return s
	}

	s = replacer().Replace(s)

	out, _, err := transform.String(nonPrintable, s)
	if err != nil {
		return ""
	}
	return out
}

func isPrintableASCII(s string) bool {
	for i := range len(s) {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
