package strx

import (
	"github.com/dmitrymomot/strx/pkg/jsonsniff"
	"github.com/dmitrymomot/strx/pkg/slug"
	"github.com/dmitrymomot/strx/pkg/strcase"
	"github.com/dmitrymomot/strx/pkg/strutil"
	"github.com/dmitrymomot/strx/pkg/translit"
)

// ASCII transliterates s and drops everything outside printable ASCII.
func ASCII(s string) string {
	return translit.ASCII(s)
}

// Slug returns a dash-separated URL slug for title.
func Slug(title string) string {
	return slug.Slugify(title, slug.DefaultSeparator)
}

// SlugWith returns a URL slug for title joined by separator.
func SlugWith(title, separator string) string {
	return slug.Slugify(title, separator)
}

// SnakeCaseSafe snake-cases title and slugifies the result with separator
// ("_" when empty).
func SnakeCaseSafe(title, separator string) string {
	return strcase.SnakeSafe(title, separator)
}

// SnakeCase inserts delimiter before inner uppercase letters and lowercases.
func SnakeCase(value, delimiter string) string {
	return strcase.Snake(value, delimiter)
}

// CamelCase converts value to camelCase.
func CamelCase(value string) string {
	return strcase.Camel(value)
}

// StudlyCase converts value to StudlyCase.
func StudlyCase(value string) string {
	return strcase.Studly(value)
}

// StartsWith reports whether haystack starts with any of the non-empty needles.
func StartsWith(needles []string, haystack string) bool {
	return strutil.StartsWithAny(needles, haystack)
}

// Contains reports whether haystack contains any of the non-empty needles.
func Contains(needles []string, haystack string) bool {
	return strutil.ContainsAny(needles, haystack)
}

// EndsWith reports whether haystack ends with any of the non-empty needles.
func EndsWith(needles []string, haystack string) bool {
	return strutil.EndsWithAny(needles, haystack)
}

// Limit truncates value to limit runes and appends end when it was cut.
func Limit(value string, limit int, end string) string {
	return strutil.Truncate(value, limit, end)
}

// JSON decodes s when it looks like a JSON object. Failures are
// *jsonsniff.Error values; use jsonsniff.KindOf to inspect them.
func JSON(s string) (map[string]any, error) {
	return jsonsniff.Parse(s)
}

// JSONValid reports whether s looks like and decodes as a JSON object.
func JSONValid(s string) error {
	return jsonsniff.Valid(s)
}
