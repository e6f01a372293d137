// Package md2rtf converts Markdown to RTF body markup by walking the
// goldmark AST directly, without an HTML intermediate. Output is a body
// fragment: the caller supplies the surrounding RTF document header, which
// must declare font 0 (serif) and font 1 (monospace).
package md2rtf

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/docfold/go-rtfmerge/internal/rtf"
)

// headingSizes maps heading levels 1-6 to half-point font sizes.
var headingSizes = [...]int{0, 48, 40, 32, 28, 24, 22}

// listIndentTwips is the indent step per list nesting level.
const listIndentTwips = 360

// quoteIndentTwips is the indent step per blockquote nesting level.
const quoteIndentTwips = 720

// Convert renders markdown as an RTF body fragment.
func Convert(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	source := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(source))

	r := renderer{src: source}
	if err := r.render(doc); err != nil {
		return "", err
	}
	return r.out.String(), nil
}

// listState tracks one open list while walking.
type listState struct {
	ordered bool
	next    int
}

type renderer struct {
	src        []byte
	out        strings.Builder
	lists      []listState
	quoteDepth int
}

func (r *renderer) render(doc ast.Node) error {
	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if entering {
				fmt.Fprintf(&r.out, "{\\pard\\b\\fs%d ", headingSizes[node.Level])
			} else {
				r.out.WriteString("\\par}\n")
			}

		case *ast.Paragraph:
			if entering {
				r.openParagraph()
			} else {
				r.closeParagraph()
			}

		case *ast.Blockquote:
			if entering {
				r.quoteDepth++
			} else {
				r.quoteDepth--
			}

		case *ast.Text:
			if entering {
				r.out.WriteString(rtf.EscapeText(string(node.Segment.Value(r.src))))
				if node.HardLineBreak() {
					r.out.WriteString("\\line ")
				} else if node.SoftLineBreak() {
					r.out.WriteByte(' ')
				}
			}

		case *ast.Emphasis:
			control := "\\i"
			if node.Level == 2 {
				control = "\\b"
			}
			if entering {
				r.out.WriteString("{" + control + " ")
			} else {
				r.out.WriteByte('}')
			}

		case *east.Strikethrough:
			if entering {
				r.out.WriteString("{\\strike ")
			} else {
				r.out.WriteByte('}')
			}

		case *ast.CodeSpan:
			if entering {
				r.out.WriteString("{\\f1 ")
			} else {
				r.out.WriteByte('}')
			}

		case *ast.Link:
			// Link text renders inline; the destination follows in
			// monospace since RTF field codes are out of scope here.
			if !entering {
				fmt.Fprintf(&r.out, " ({\\f1 %s})", rtf.EscapeText(string(node.Destination)))
			}

		case *ast.Image:
			if !entering {
				fmt.Fprintf(&r.out, " ({\\f1 %s})", rtf.EscapeText(string(node.Destination)))
			}

		case *ast.AutoLink:
			if entering {
				r.out.WriteString("{\\f1 " + rtf.EscapeText(string(node.URL(r.src))) + "}")
			}

		case *ast.FencedCodeBlock:
			if entering {
				r.codeBlock(string(node.Language(r.src)), blockText(node, r.src))
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			if entering {
				r.codeBlock("", blockText(node, r.src))
			}
			return ast.WalkSkipChildren, nil

		case *ast.List:
			if entering {
				r.lists = append(r.lists, listState{ordered: node.IsOrdered(), next: node.Start})
			} else {
				r.lists = r.lists[:len(r.lists)-1]
			}

		case *ast.ListItem:
			if entering {
				r.openListItem()
			} else {
				r.out.WriteString("\\par}\n")
			}

		case *ast.ThematicBreak:
			if entering {
				r.out.WriteString("{\\pard\\brdrb\\brdrs\\brdrw10\\par}\n")
			}

		case *ast.HTMLBlock, *ast.RawHTML:
			// Raw HTML has no RTF rendition; dropped.
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

// openParagraph starts a paragraph group, indented and italicized inside
// blockquotes, plain otherwise. Paragraphs inside list items flow into
// the item's own group.
func (r *renderer) openParagraph() {
	if len(r.lists) > 0 {
		return
	}
	if r.quoteDepth > 0 {
		fmt.Fprintf(&r.out, "{\\pard\\li%d\\i ", quoteIndentTwips*r.quoteDepth)
		return
	}
	r.out.WriteString("{\\pard ")
}

// closeParagraph mirrors openParagraph: paragraphs inside list items open
// no group of their own, so they close none either.
func (r *renderer) closeParagraph() {
	if len(r.lists) > 0 {
		return
	}
	r.out.WriteString("\\par}\n")
}

// openListItem starts a list item group with a bullet or ordinal prefix.
func (r *renderer) openListItem() {
	ls := &r.lists[len(r.lists)-1]
	indent := listIndentTwips * len(r.lists)
	if ls.ordered {
		fmt.Fprintf(&r.out, "{\\pard\\li%d %d. ", indent, ls.next)
		ls.next++
		return
	}
	fmt.Fprintf(&r.out, "{\\pard\\li%d \\bullet  ", indent)
}

// blockText concatenates the source lines covered by a code block node.
func blockText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}
