// Package slug generates URL-safe ASCII slugs from arbitrary Unicode strings.
//
// Text is first transliterated with package translit (so "Straße" becomes
// "strasse" and "Щука" becomes "shchuka"), then normalized: dashes and
// underscores are unified to the separator, everything is lowercased, characters
// other than letters, digits, whitespace and the separator are removed, runs of
// separators and whitespace collapse into one separator, and the ends are trimmed.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/strx/pkg/slug"
//
//	slug.Make("Héllo Wôrld!")                   // "hello-world"
//	slug.Slugify("Ünïçödé Tëst", "_")           // "unicode_test"
//	slug.Make("  Multiple   Spaces_here--now ") // "multiple-spaces-here-now"
//
// Punctuation inside words is removed rather than turned into a separator:
//
//	slug.Make("Côte d'Ivoire") // "cote-divoire"
//	slug.Make("Price: $99.99") // "price-9999"
//
// # Configuration Options
//
// Separator sets the character used between words:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
// MaxLength limits the slug length (rune-based):
//
//	slug.Make("This is a very long title", slug.MaxLength(14))
//	// Output: "this-is-a-very"
//
// CustomReplace applies string replacements before slugification:
//
//	replacements := map[string]string{"&": "and", "@": "at"}
//	slug.Make("Fish & Chips @ Home", slug.CustomReplace(replacements))
//	// Output: "fish-and-chips-at-home"
//
// StripHTML removes markup from rich titles:
//
//	slug.Make("<h1>Fish &amp; Chips</h1>", slug.StripHTML())
//	// Output: "fish-chips"
//
// WithSuffix adds a random alphanumeric suffix for uniqueness:
//
//	slug.Make("Article Title", slug.WithSuffix(8))
//	// Output: "article-title-a3f7k2m9"
//
// ReservedSlugs prevents use of specified slugs (case-insensitive) by appending a suffix:
//
//	slug.Make("admin", slug.ReservedSlugs("admin", "api", "system"))
//	// Output: "admin-k7x2m4"
//
// # Guarantees
//
// With a single-character separator and no options, Slugify is idempotent,
// never returns a doubled, leading or trailing separator, and returns only
// [a-z0-9] plus the separator. It never fails; unusable input yields "".
package slug
