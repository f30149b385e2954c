package anchor_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"

	"github.com/dmitrymomot/strx/pkg/anchor"
)

func TestIDs_Generate(t *testing.T) {
	t.Parallel()

	t.Run("slugifies and deduplicates", func(t *testing.T) {
		t.Parallel()

		ids := anchor.NewIDs("")
		assert.Equal(t, "hello-world", string(ids.Generate([]byte("Hello World"), ast.KindHeading)))
		assert.Equal(t, "hello-world-1", string(ids.Generate([]byte("Hello World"), ast.KindHeading)))
		assert.Equal(t, "hello-world-2", string(ids.Generate([]byte("hello world!"), ast.KindHeading)))
		assert.Equal(t, "unicode-test", string(ids.Generate([]byte("Ünïçödé Tëst"), ast.KindHeading)))
	})

	t.Run("empty slug falls back", func(t *testing.T) {
		t.Parallel()

		ids := anchor.NewIDs("-")
		assert.Equal(t, "heading", string(ids.Generate([]byte("!!!"), ast.KindHeading)))
		assert.Equal(t, "heading-1", string(ids.Generate([]byte("中文"), ast.KindHeading)))
	})

	t.Run("put reserves ids", func(t *testing.T) {
		t.Parallel()

		ids := anchor.NewIDs("_")
		ids.Put([]byte("intro"))
		assert.Equal(t, "intro_1", string(ids.Generate([]byte("Intro"), ast.KindHeading)))
	})
}

func TestMarkdown_Headings(t *testing.T) {
	t.Parallel()

	src := []byte("# Hello World\n\nText.\n\n## Hello World\n\n### Ünïçödé Tëst\n\n## *Bold* move\n\n# !!!\n")

	got := anchor.New().Headings(src)
	require.Len(t, got, 5)

	assert.Equal(t, anchor.Heading{Level: 1, Text: "Hello World", ID: "hello-world"}, got[0])
	assert.Equal(t, anchor.Heading{Level: 2, Text: "Hello World", ID: "hello-world-1"}, got[1])
	assert.Equal(t, anchor.Heading{Level: 3, Text: "Ünïçödé Tëst", ID: "unicode-test"}, got[2])
	assert.Equal(t, anchor.Heading{Level: 2, Text: "Bold move", ID: "bold-move"}, got[3])
	assert.Equal(t, "heading", got[4].ID)
}

func TestMarkdown_SeparatorAndRender(t *testing.T) {
	t.Parallel()

	md := anchor.New(anchor.WithSeparator("_"))

	got := md.Headings([]byte("# Straße Guide\n"))
	require.Len(t, got, 1)
	assert.Equal(t, "strasse_guide", got[0].ID)

	var buf bytes.Buffer
	require.NoError(t, md.Render(&buf, []byte("# Straße Guide\n")))
	assert.Contains(t, buf.String(), `<h1 id="strasse_guide">Straße Guide</h1>`)
}

func TestMarkdown_IndependentDocuments(t *testing.T) {
	t.Parallel()

	md := anchor.New()
	src := []byte("# Title\n")

	first := md.Headings(src)
	second := md.Headings(src)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "title", first[0].ID)
	assert.Equal(t, "title", second[0].ID)
}
