package anchor

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one markdown heading with its generated anchor.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
	ID    string `json:"id" yaml:"id"`
}

// Option configures a Markdown processor.
type Option func(*Markdown)

// WithSeparator sets the separator used inside anchors.
// Default: "-".
func WithSeparator(sep string) Option {
	return func(m *Markdown) {
		m.sep = sep
	}
}

// Markdown parses and renders markdown with slug-based heading ids.
type Markdown struct {
	md  goldmark.Markdown
	sep string
}

// New creates a Markdown processor. Explicit ids ({#id}) are honored and
// reserved before automatic ids are generated.
func New(opts ...Option) *Markdown {
	m := &Markdown{
		md: goldmark.New(
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithAttribute(),
			),
		),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Headings returns every heading in src in document order.
func (m *Markdown) Headings(src []byte) []Heading {
	doc := m.parse(src)

	var out []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}

		item := Heading{Level: h.Level, Text: plainText(h, src)}
		if v, ok := h.AttributeString("id"); ok {
			if id, ok := v.([]byte); ok {
				item.ID = string(id)
			}
		}
		out = append(out, item)
		return ast.WalkSkipChildren, nil
	})
	return out
}

// Render writes src as HTML with id attributes on every heading.
func (m *Markdown) Render(w io.Writer, src []byte) error {
	return m.md.Renderer().Render(w, src, m.parse(src))
}

func (m *Markdown) parse(src []byte) ast.Node {
	ctx := parser.NewContext(parser.WithIDs(NewIDs(m.sep)))
	return m.md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))
}

// plainText concatenates the literal text below n.
func plainText(n ast.Node, src []byte) string {
	var b bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
