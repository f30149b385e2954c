// Package anchor generates heading anchors for markdown documents.
//
// IDs plugs into goldmark as a parser.IDs implementation, so heading ids go
// through the same transliteration and slug rules as everything else:
//
//	md := anchor.New()
//	for _, h := range md.Headings([]byte("# Ünïçödé Tëst\n## Ünïçödé Tëst\n")) {
//		fmt.Println(h.ID) // "unicode-test", then "unicode-test-1"
//	}
//
// Repeated headings get the separator and a counter appended. Headings whose
// text has nothing left after slugification use "heading".
package anchor
