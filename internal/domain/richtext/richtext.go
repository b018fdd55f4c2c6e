// Package richtext flattens Portable Text blocks from the content store into
// plain paragraphs and sanitized HTML.
package richtext

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	Children []Span    `json:"children"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// IsText reports whether b is a text block; embedded objects are skipped.
func (b Block) IsText() bool { return b.Type == "block" }

// PlainText joins the text of every child span.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, s := range b.Children {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Paragraphs returns one string per text block.
func Paragraphs(blocks []Block) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.IsText() {
			out = append(out, b.PlainText())
		}
	}
	return out
}

// Excerpt is the text of the first span of the first block, used on cards.
func Excerpt(blocks []Block) string {
	if len(blocks) == 0 || len(blocks[0].Children) == 0 {
		return ""
	}
	return blocks[0].Children[0].Text
}

var policy = bluemonday.UGCPolicy()

var styleTags = map[string]string{
	"normal":     "p",
	"h1":         "h2",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"blockquote": "blockquote",
}

var markTags = map[string]string{
	"strong":    "strong",
	"em":        "em",
	"underline": "u",
	"code":      "code",
}

// HTML renders blocks as HTML and passes the result through a UGC policy,
// so hrefs from link annotations are sanitized too.
func HTML(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		if !b.IsText() {
			continue
		}
		tag, ok := styleTags[b.Style]
		if !ok {
			tag = "p"
		}
		sb.WriteString("<" + tag + ">")
		for _, s := range b.Children {
			writeSpan(&sb, s, b.MarkDefs)
		}
		sb.WriteString("</" + tag + ">")
	}
	return policy.Sanitize(sb.String())
}

func writeSpan(sb *strings.Builder, s Span, defs []MarkDef) {
	var closing []string
	for _, m := range s.Marks {
		if tag, ok := markTags[m]; ok {
			sb.WriteString("<" + tag + ">")
			closing = append(closing, "</"+tag+">")
			continue
		}
		for _, d := range defs {
			if d.Key == m && d.Type == "link" && d.Href != "" {
				sb.WriteString(`<a href="` + html.EscapeString(d.Href) + `">`)
				closing = append(closing, "</a>")
			}
		}
	}
	sb.WriteString(html.EscapeString(s.Text))
	for i := len(closing) - 1; i >= 0; i-- {
		sb.WriteString(closing[i])
	}
}
