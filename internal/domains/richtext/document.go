package richtext

// Node types of the Contentful rich-text document tree. The set is closed
// but extensible on the CMS side; unknown types fall back to the generic
// structural render.
const (
	NodeDocument      = "document"
	NodeParagraph     = "paragraph"
	NodeHeading1      = "heading-1"
	NodeHeading2      = "heading-2"
	NodeHeading3      = "heading-3"
	NodeHeading4      = "heading-4"
	NodeHeading5      = "heading-5"
	NodeHeading6      = "heading-6"
	NodeUnorderedList = "unordered-list"
	NodeOrderedList   = "ordered-list"
	NodeListItem      = "list-item"
	NodeBlockquote    = "blockquote"
	NodeHR            = "hr"
	NodeHyperlink     = "hyperlink"
	NodeEmbeddedEntry = "embedded-entry-block"
	NodeEmbeddedAsset = "embedded-asset-block"
	NodeText          = "text"
)

// Text marks.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkCode      = "code"
)

// EntryTypeCodeBlock is the only embedded entry variant the renderer
// recognizes. Everything else renders as empty output.
const EntryTypeCodeBlock = "CodeBlock"

// Node is one node of the document tree. Text nodes carry Value and Marks
// and have no Content; embedded nodes carry a Data.Target reference into
// the link tables.
type Node struct {
	NodeType string   `json:"nodeType"`
	Content  []Node   `json:"content,omitempty"`
	Data     NodeData `json:"data,omitempty"`
	Value    string   `json:"value,omitempty"`
	Marks    []Mark   `json:"marks,omitempty"`
}

type Mark struct {
	Type string `json:"type"`
}

type NodeData struct {
	URI    string  `json:"uri,omitempty"`
	Target *Target `json:"target,omitempty"`
}

type Target struct {
	Sys Sys `json:"sys"`
}

type Sys struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
}

// Links are the side tables supplied alongside a document, mapping the
// opaque target ids of embedded nodes to full entry/asset data. They are
// populated once per fetch and read-only during a render.
type Links struct {
	Entries EntryLinks `json:"entries"`
	Assets  AssetLinks `json:"assets"`
}

type EntryLinks struct {
	Block []EntryBlock `json:"block"`
}

type AssetLinks struct {
	Block []AssetBlock `json:"block"`
}

type EntryBlock struct {
	Typename string `json:"__typename"`
	Sys      Sys    `json:"sys"`
	Title    string `json:"title"`
	Lang     string `json:"lang"`
	Code     string `json:"code"`
}

type AssetBlock struct {
	Sys    Sys    `json:"sys"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
