package rtfmerge

import (
	"fmt"
	"os"

	"github.com/docfold/go-rtfmerge/internal/rtf"
)

// Document is the capability the merge engine requires from an input
// document: a rendered RTF body, and the metadata fields the document
// contributes to the shared header.
type Document interface {
	// Body returns the document's rendered RTF body markup.
	Body() (string, error)

	// Metadata returns header fields contributed by this document, keyed
	// by external field name (e.g. "Title"). May return nil.
	Metadata() map[string]string
}

// fileDocument is a file-backed document. Content is read and parsed on
// the first Body call, never at add time.
type fileDocument struct {
	path string
	body string
	read bool
}

func (d *fileDocument) Body() (string, error) {
	if d.read {
		return d.body, nil
	}
	raw, err := os.ReadFile(d.path) // #nosec G304 -- input path is caller-provided
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadFailure, d.path, err)
	}
	d.body = rtf.ExtractBody(string(raw))
	d.read = true
	return d.body, nil
}

func (d *fileDocument) Metadata() map[string]string { return nil }

// dataDocument holds literal document data in memory. Complete RTF data
// has its body extracted; anything else is escaped as plain text.
type dataDocument struct {
	data string
}

func (d *dataDocument) Body() (string, error) {
	return rtf.ExtractBody(d.data), nil
}

func (d *dataDocument) Metadata() map[string]string { return nil }

// handle binds one resolved Document to the session's shared header.
// Handles are created at add time and owned exclusively by the registry;
// the header reference is non-owning.
type handle struct {
	doc    Document
	header *Header
}

// newHandle wraps doc and merges its metadata into the shared header.
// Document-level values only fill fields that are still unset, so across
// documents the first writer per field wins, in add order.
func newHandle(doc Document, header *Header) *handle {
	h := &handle{doc: doc, header: header}
	for name, value := range doc.Metadata() {
		header.setIfUnset(name, value)
	}
	return h
}
