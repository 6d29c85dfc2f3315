package richtext

import (
	"bytes"
	"html"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var highlightFormatter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.PreventSurroundingPre(true),
)

// Highlight is a pure function from (code, language) to HTML span markup.
// Unknown languages fall back to plaintext tokenization; on any formatter
// error the escaped source is returned so the code block still renders.
func Highlight(code, lang string) string {
	if lang == "" {
		lang = "plaintext"
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return html.EscapeString(code)
	}

	var buf bytes.Buffer
	if err := highlightFormatter.Format(&buf, styles.Fallback, iterator); err != nil {
		return html.EscapeString(code)
	}

	return buf.String()
}
