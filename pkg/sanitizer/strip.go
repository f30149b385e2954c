package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every element and attribute, keeping text content only.
var strictPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// StripTags removes all HTML markup from s and decodes entities,
// so "<b>Fish &amp; Chips</b>" becomes "Fish & Chips".
// Script and style contents are dropped along with their tags.
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return html.UnescapeString(strictPolicy().Sanitize(s))
}

// StripTagsWith applies a custom bluemonday policy and decodes entities in the result.
// Returns input unchanged if policy is nil.
func StripTagsWith(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return html.UnescapeString(policy.Sanitize(s))
}
