package md2rtf

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/docfold/go-rtfmerge/internal/rtf"
)

// codeBlock renders source code as a monospaced RTF block. When a chroma
// lexer is available, tokenization drives styling: keywords render bold
// and comments italic. The merged header carries no color table, so
// styling stays monochrome.
func (r *renderer) codeBlock(lang, code string) {
	code = strings.TrimRight(code, "\n")
	r.out.WriteString("{\\pard\\f1\\fs20 ")
	r.writeCode(lang, code)
	r.out.WriteString("\\par}\n")
}

// writeCode emits the code text, tokenized when possible and escaped
// plain otherwise.
func (r *renderer) writeCode(lang, code string) {
	lexer := lexers.Get(lang)
	if lexer == nil && lang == "" {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		r.out.WriteString(rtf.EscapeText(code))
		return
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		r.out.WriteString(rtf.EscapeText(code))
		return
	}
	for tok := it(); tok != chroma.EOF; tok = it() {
		r.writeToken(tok)
	}
}

func (r *renderer) writeToken(tok chroma.Token) {
	escaped := rtf.EscapeText(tok.Value)
	switch {
	case tok.Type.InCategory(chroma.Keyword):
		r.out.WriteString("{\\b " + escaped + "}")
	case tok.Type.InCategory(chroma.Comment):
		r.out.WriteString("{\\i " + escaped + "}")
	default:
		r.out.WriteString(escaped)
	}
}
