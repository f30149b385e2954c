// Package translit folds Unicode text to printable ASCII using a fixed substitution table.
//
// The table maps ASCII tokens ("a", "ae", "Shch", "(c)", " ") to the Unicode
// sequences they replace: accented Latin, Greek, Cyrillic, Arabic, Armenian,
// Georgian, Devanagari, Myanmar and fullwidth forms, super- and subscript digits,
// and typographic spaces. It is not a general Unicode normalizer: anything the
// table does not list is removed.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/strx/pkg/translit"
//
//	translit.ASCII("Straße in München") // "Strasse in Munchen"
//	translit.ASCII("Щука")              // "Shchuka"
//	translit.ASCII("© 2024 😀")         // "(c) 2024 "
//
// # Ordering
//
// Rules are applied in definition order and earlier rules win. The Cyrillic/Latin
// "đ" appears under both "d" and "dj"; it always becomes "d". The table is therefore
// never sorted or deduplicated.
//
// Lookup returns a copy of the table for inspection:
//
//	for _, r := range translit.Lookup() {
//		fmt.Println(r.Token, len(r.Sources))
//	}
package translit
