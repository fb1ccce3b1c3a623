// Package markdown renders generated routines and finds their sections.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Renderer converts model output (markdown) to HTML.
// Raw HTML in the input is not passed through.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with GitHub-flavoured extensions.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// ToHTML renders content as an HTML fragment.
func (r *Renderer) ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// FindSections reports which of names appear as section titles in content, in
// document order. A section title is a heading, or a paragraph or list item
// whose first line starts with the name (case-insensitive, emphasis and
// numbering ignored). Each name is reported at most once.
func (r *Renderer) FindSections(content string, names []string) []string {
	source := []byte(content)
	doc := r.md.Parser().Parse(text.NewReader(source))

	found := []string{}
	seen := make(map[string]bool, len(names))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
		default:
			return ast.WalkContinue, nil
		}

		line := normalizeTitle(firstLine(n, source))
		for _, name := range names {
			if seen[name] {
				continue
			}
			if strings.HasPrefix(line, strings.ToUpper(name)) {
				seen[name] = true
				found = append(found, name)
				break
			}
		}
		return ast.WalkSkipChildren, nil
	})

	return found
}

// firstLine returns the raw source of the first line of a block node.
func firstLine(n ast.Node, source []byte) string {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return ""
	}
	seg := lines.At(0)
	return string(seg.Value(source))
}

// normalizeTitle strips emphasis markers and leading list numbering.
func normalizeTitle(line string) string {
	line = strings.NewReplacer("*", "", "_", "", "#", "").Replace(line)
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "0123456789.) ")
	return strings.ToUpper(strings.TrimSpace(line))
}
