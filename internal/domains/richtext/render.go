package richtext

import (
	"fmt"
	"html"
	"strings"

	"compass-backend/internal/shared/utils"
)

// headingClass is the fixed class carried by h2/h3 so deep links scroll
// past the sticky header.
const headingClass = "scroll-mt-20 sm:scroll-mt-6 group"

// Renderer converts a rich-text document into an HTML string. Link tables
// are indexed once at construction; a Renderer is immutable afterwards and
// safe to reuse within the request that built it.
//
// Unresolvable embedded references and malformed special-case nodes render
// as empty output for that node only. The walk never fails: the rest of the
// page stays available.
type Renderer struct {
	entries map[string]EntryBlock
	assets  map[string]AssetBlock
}

func NewRenderer(links Links) *Renderer {
	r := &Renderer{
		entries: make(map[string]EntryBlock, len(links.Entries.Block)),
		assets:  make(map[string]AssetBlock, len(links.Assets.Block)),
	}
	for _, e := range links.Entries.Block {
		r.entries[e.Sys.ID] = e
	}
	for _, a := range links.Assets.Block {
		r.assets[a.Sys.ID] = a
	}
	return r
}

// Render walks the document depth-first in content order and returns the
// concatenated HTML. A nil or empty document renders to "".
func (r *Renderer) Render(doc *Node) string {
	if doc == nil {
		return ""
	}

	var sb strings.Builder
	r.renderNode(*doc, &sb)
	return sb.String()
}

func (r *Renderer) renderNode(n Node, sb *strings.Builder) {
	switch n.NodeType {
	case NodeText:
		sb.WriteString(wrapMarks(html.EscapeString(n.Value), n.Marks))

	case NodeHeading2, NodeHeading3:
		sb.WriteString(r.renderHeading(n))

	case NodeHyperlink:
		sb.WriteString(r.renderHyperlink(n))

	case NodeEmbeddedEntry:
		sb.WriteString(r.renderEmbeddedEntry(n))

	case NodeEmbeddedAsset:
		sb.WriteString(r.renderEmbeddedAsset(n))

	default:
		opening, closing := tagFor(n.NodeType)
		sb.WriteString(opening)
		for _, child := range n.Content {
			r.renderNode(child, sb)
		}
		sb.WriteString(closing)
	}
}

// renderHeading emits h2/h3 with a slug id derived from the first child's
// text. A heading whose first child is not plain text renders as empty
// output, never partially.
func (r *Renderer) renderHeading(n Node) string {
	tag := "h2"
	if n.NodeType == NodeHeading3 {
		tag = "h3"
	}

	if len(n.Content) == 0 || n.Content[0].NodeType != NodeText {
		return ""
	}

	value := n.Content[0].Value
	return fmt.Sprintf(`<%s id="%s" class="%s">%s</%s>`,
		tag, utils.Slugify(value), headingClass, html.EscapeString(value), tag)
}

func (r *Renderer) renderHyperlink(n Node) string {
	if len(n.Content) == 0 || n.Content[0].NodeType != NodeText {
		return ""
	}

	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
		html.EscapeString(n.Data.URI), html.EscapeString(n.Content[0].Value))
}

// renderEmbeddedEntry resolves the target against the entries table. Only
// CodeBlock entries are rendered; any other type, or a missing id, yields
// empty output.
func (r *Renderer) renderEmbeddedEntry(n Node) string {
	if n.Data.Target == nil {
		return ""
	}

	entry, ok := r.entries[n.Data.Target.Sys.ID]
	if !ok || entry.Typename != EntryTypeCodeBlock {
		return ""
	}

	lang := entry.Lang
	if lang == "" {
		lang = "plaintext"
	}

	return fmt.Sprintf(`<pre data-lang="%s"><code>%s</code></pre>`,
		html.EscapeString(lang), Highlight(entry.Code, lang))
}

func (r *Renderer) renderEmbeddedAsset(n Node) string {
	if n.Data.Target == nil {
		return ""
	}

	img, ok := r.assets[n.Data.Target.Sys.ID]
	if !ok {
		return ""
	}

	return fmt.Sprintf(`<img src="%s" alt="%s" width="%d" height="%d" />`,
		html.EscapeString(utils.ToWebp(img.URL)), html.EscapeString(img.Title), img.Width, img.Height)
}

// tagFor maps structural node types to their wrapping tags. Unknown node
// types render their children without a wrapper.
func tagFor(nodeType string) (string, string) {
	switch nodeType {
	case NodeParagraph:
		return "<p>", "</p>"
	case NodeHeading1:
		return "<h1>", "</h1>"
	case NodeHeading4:
		return "<h4>", "</h4>"
	case NodeHeading5:
		return "<h5>", "</h5>"
	case NodeHeading6:
		return "<h6>", "</h6>"
	case NodeUnorderedList:
		return "<ul>", "</ul>"
	case NodeOrderedList:
		return "<ol>", "</ol>"
	case NodeListItem:
		return "<li>", "</li>"
	case NodeBlockquote:
		return "<blockquote>", "</blockquote>"
	case NodeHR:
		return "<hr/>", ""
	case NodeDocument:
		return "", ""
	default:
		return "", ""
	}
}

// PlainText concatenates every text node value in document order. Used for
// read-time estimation, where markup must not count as prose.
func PlainText(doc *Node) string {
	if doc == nil {
		return ""
	}

	var sb strings.Builder
	collectText(*doc, &sb)
	return sb.String()
}

func collectText(n Node, sb *strings.Builder) {
	if n.NodeType == NodeText {
		sb.WriteString(n.Value)
		return
	}
	for _, child := range n.Content {
		collectText(child, sb)
	}
}

// wrapMarks wraps already-escaped text in mark tags, innermost first in
// the order the document lists them.
func wrapMarks(escaped string, marks []Mark) string {
	for _, m := range marks {
		switch m.Type {
		case MarkBold:
			escaped = "<b>" + escaped + "</b>"
		case MarkItalic:
			escaped = "<i>" + escaped + "</i>"
		case MarkUnderline:
			escaped = "<u>" + escaped + "</u>"
		case MarkCode:
			escaped = "<code>" + escaped + "</code>"
		}
	}
	return escaped
}
