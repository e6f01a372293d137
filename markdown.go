package rtfmerge

import (
	"fmt"

	"github.com/docfold/go-rtfmerge/internal/md2rtf"
)

// markdownDocument renders Markdown as an RTF body on first use.
type markdownDocument struct {
	source string
	body   string
	done   bool
}

// MarkdownDocument returns a Document whose body is the given Markdown
// rendered as RTF. Conversion happens lazily on the first Body call, so
// adding a markdown document is as cheap as adding a file path.
func MarkdownDocument(source string) Document {
	return &markdownDocument{source: source}
}

func (d *markdownDocument) Body() (string, error) {
	if d.done {
		return d.body, nil
	}
	body, err := md2rtf.Convert(d.source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadFailure, err)
	}
	d.body = body
	d.done = true
	return body, nil
}

func (d *markdownDocument) Metadata() map[string]string { return nil }
