// Package strx is a small text toolkit: ASCII transliteration, URL slugs,
// identifier casing, truncation, string predicates and a JSON sniffer.
//
// The root package is a flat facade over the packages under pkg/:
//
//	strx.Slug("Héllo Wôrld!")                  // "hello-world"
//	strx.SlugWith("Ünïçödé Tëst", "_")         // "unicode_test"
//	strx.SnakeCase("HelloWorld", "_")          // "hello_world"
//	strx.CamelCase("hello_world")              // "helloWorld"
//	strx.Limit("abcdefgh", 5, "...")           // "abcde..."
//	strx.StartsWith([]string{"foo"}, "foobar") // true
//
// For options and finer control use the packages directly:
//
//   - [github.com/dmitrymomot/strx/pkg/translit] holds the transliteration table.
//   - [github.com/dmitrymomot/strx/pkg/slug] builds slugs with length limits,
//     suffixes, reserved words and HTML stripping.
//   - [github.com/dmitrymomot/strx/pkg/strcase] memoizes casing through a
//     pluggable [github.com/dmitrymomot/strx/pkg/memo] store (LRU or Redis).
//   - [github.com/dmitrymomot/strx/pkg/jsonsniff] reports typed JSON failures.
//   - [github.com/dmitrymomot/strx/pkg/anchor] generates markdown heading ids.
//
// Every function is safe for concurrent use. Only JSON can fail; everything
// else degrades to a best-effort result, and input with nothing usable left
// yields "".
package strx
