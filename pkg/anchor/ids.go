package anchor

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"

	"github.com/dmitrymomot/strx/pkg/slug"
)

// fallbackID is used for headings whose text slugifies to nothing.
const fallbackID = "heading"

// IDs generates transliterated, document-unique heading ids.
// It implements goldmark's parser.IDs and is not safe for concurrent use;
// create one per document.
type IDs struct {
	sep  string
	seen map[string]struct{}
}

// NewIDs creates an id generator joining words with sep ("-" when empty).
func NewIDs(sep string) *IDs {
	if sep == "" {
		sep = slug.DefaultSeparator
	}
	return &IDs{sep: sep, seen: make(map[string]struct{})}
}

// Generate returns a slug for value, suffixed with sep and a counter when the
// slug was already used in this document.
func (ids *IDs) Generate(value []byte, kind ast.NodeKind) []byte {
	base := slug.Slugify(string(value), ids.sep)
	if base == "" {
		base = fallbackID
	}

	id := base
	for i := 1; ids.taken(id); i++ {
		id = base + ids.sep + strconv.Itoa(i)
	}
	ids.seen[id] = struct{}{}
	return []byte(id)
}

// Put reserves an id set explicitly in the document.
func (ids *IDs) Put(value []byte) {
	ids.seen[string(value)] = struct{}{}
}

func (ids *IDs) taken(id string) bool {
	_, ok := ids.seen[id]
	return ok
}

var _ parser.IDs = (*IDs)(nil)
