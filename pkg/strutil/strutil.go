package strutil

import (
	"strings"
	"unicode/utf8"
)

// Defaults used by Limit.
const (
	DefaultLimit = 100
	DefaultEnd   = "..."
)

// trailingSpace is the set trimmed from a truncated value before end is appended.
const trailingSpace = " \t\n\r\x00\x0b"

// StartsWithAny reports whether haystack begins with any non-empty needle.
func StartsWithAny(needles []string, haystack string) bool {
	for _, n := range needles {
		if n != "" && strings.HasPrefix(haystack, n) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any non-empty needle occurs in haystack.
func ContainsAny(needles []string, haystack string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// EndsWithAny reports whether haystack ends with any needle.
// An empty needle always matches.
func EndsWithAny(needles []string, haystack string) bool {
	for _, n := range needles {
		if strings.HasSuffix(haystack, n) {
			return true
		}
	}
	return false
}

// Truncate shortens value to at most limit runes, trims trailing whitespace
// from what is left and appends end. Values that already fit are returned as is.
//
//	Truncate("abcdefgh", 5, "...") // "abcde..."
//	Truncate("hello world", 6, "…") // "hello…"
func Truncate(value string, limit int, end string) string {
	limit = max(limit, 0)
	if utf8.RuneCountInString(value) <= limit {
		return value
	}

	i := 0
	for n := range value {
		if i == limit {
			value = value[:n]
			break
		}
		i++
	}
	return strings.TrimRight(value, trailingSpace) + end
}

// Limit truncates value to DefaultLimit runes with DefaultEnd.
func Limit(value string) string {
	return Truncate(value, DefaultLimit, DefaultEnd)
}
