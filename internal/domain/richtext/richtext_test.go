package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func textBlock(style string, spans ...Span) Block {
	return Block{Type: "block", Style: style, Children: spans}
}

func TestParagraphsSkipsNonTextBlocks(t *testing.T) {
	blocks := []Block{
		textBlock("normal", Span{Type: "span", Text: "Born in "}, Span{Type: "span", Text: "Buenos Aires."}),
		{Type: "image"},
		textBlock("normal", Span{Type: "span", Text: "Lives in Madrid."}),
	}

	assert.Equal(t, []string{"Born in Buenos Aires.", "Lives in Madrid."}, Paragraphs(blocks))
	assert.Empty(t, Paragraphs(nil))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "", Excerpt(nil))
	assert.Equal(t, "", Excerpt([]Block{{Type: "block"}}))
	assert.Equal(t, "First", Excerpt([]Block{textBlock("", Span{Text: "First"}, Span{Text: " second"})}))
}

func TestHTMLRendersMarksAndLinks(t *testing.T) {
	b := textBlock("normal",
		Span{Text: "See "},
		Span{Text: "this", Marks: []string{"strong", "k1"}},
	)
	b.MarkDefs = []MarkDef{{Key: "k1", Type: "link", Href: "https://example.com"}}

	out := HTML([]Block{b, textBlock("h2", Span{Text: "Title"})})

	assert.Contains(t, out, "<p>See ")
	assert.Contains(t, out, "<strong>")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, "<h2>Title</h2>")
}

func TestHTMLEscapesAndSanitizes(t *testing.T) {
	b := textBlock("normal", Span{Text: "<script>alert(1)</script>", Marks: []string{"bad"}})
	b.MarkDefs = []MarkDef{{Key: "bad", Type: "link", Href: "javascript:alert(1)"}}

	out := HTML([]Block{b})

	assert.False(t, strings.Contains(out, "<script>"))
	assert.False(t, strings.Contains(out, "javascript:"))
}
