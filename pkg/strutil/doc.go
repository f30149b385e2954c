// Package strutil provides small string predicates and rune-aware truncation.
//
//	strutil.StartsWithAny([]string{"foo", "bar"}, "foobar") // true
//	strutil.EndsWithAny([]string{"baz"}, "foobar")          // false
//	strutil.Truncate("abcdefgh", 5, "...")                  // "abcde..."
//
// StartsWithAny and ContainsAny ignore empty needles, while EndsWithAny treats
// an empty needle as a match.
package strutil
