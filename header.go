package rtfmerge

import (
	"fmt"
	"strings"

	"github.com/docfold/go-rtfmerge/internal/hints"
	"github.com/docfold/go-rtfmerge/internal/rtf"
)

// Paper dimensions in twips. The merged header always declares A4; no
// other size is configurable.
const (
	paperWidthTwips  = 11907
	paperHeightTwips = 16839
)

// headerField maps one external field name to its internal key and the
// RTF info-group control word it renders as.
type headerField struct {
	name    string
	key     string
	control string
}

// headerFields enumerates the recognized metadata fields in render order.
// This is the complete set; any other name is rejected with
// ErrUndefinedField.
var headerFields = []headerField{
	{"Title", "InfoTitle", "title"},
	{"Subject", "InfoSubject", "subject"},
	{"Author", "InfoAuthor", "author"},
	{"Manager", "InfoManager", "manager"},
	{"Company", "InfoCompany", "company"},
	{"Operator", "InfoOperator", "operator"},
	{"Category", "InfoCategory", "category"},
	{"Keywords", "InfoKeywords", "keywords"},
	{"Comment", "InfoComment", "comment"},
	{"Summary", "InfoSummary", "doccomm"},
	{"Version", "InfoVersion", "version"},
}

// lookupField resolves an external field name. Lookup is an explicit
// table scan over eleven entries, deliberately not reflection.
func lookupField(name string) (headerField, bool) {
	for _, hf := range headerFields {
		if hf.name == name {
			return hf, true
		}
	}
	return headerField{}, false
}

// FieldNames returns the recognized header field names in render order.
func FieldNames() []string {
	names := make([]string, len(headerFields))
	for i, hf := range headerFields {
		names[i] = hf.name
	}
	return names
}

// Header accumulates document metadata for one merge session and renders
// the single header block that prefixes all merged bodies. Every
// recognized field always has a defined (possibly empty) value.
type Header struct {
	fields map[string]string
}

// NewHeader creates a Header with all recognized fields present and empty.
func NewHeader() *Header {
	fields := make(map[string]string, len(headerFields))
	for _, hf := range headerFields {
		fields[hf.key] = ""
	}
	return &Header{fields: fields}
}

// Get returns the value of the named field, or ErrUndefinedField for any
// name outside the recognized set.
func (h *Header) Get(name string) (string, error) {
	hf, ok := lookupField(name)
	if !ok {
		return "", undefinedField(name)
	}
	return h.fields[hf.key], nil
}

// Set assigns the named field, or fails with ErrUndefinedField for any
// name outside the recognized set.
func (h *Header) Set(name, value string) error {
	hf, ok := lookupField(name)
	if !ok {
		return undefinedField(name)
	}
	h.fields[hf.key] = value
	return nil
}

// setIfUnset assigns the named field only when it is still empty, so the
// first writer per field wins. Unrecognized names contributed by
// documents are ignored rather than failing the add.
func (h *Header) setIfUnset(name, value string) {
	hf, ok := lookupField(name)
	if !ok {
		return
	}
	if h.fields[hf.key] == "" {
		h.fields[hf.key] = value
	}
}

// Build renders the RTF header block: document prolog, font table, info
// group with one entry per non-empty field, and the fixed A4 paper size.
// Build reads accumulated state only; calling it repeatedly without
// intervening Sets yields identical output.
func (h *Header) Build() string {
	var b strings.Builder
	b.WriteString("{\\rtf1\\ansi\\ansicpg1252\\deff0\n")
	b.WriteString("{\\fonttbl{\\f0\\froman Times New Roman;}{\\f1\\fmodern Courier New;}}\n")
	b.WriteString("{\\info")
	for _, hf := range headerFields {
		value := h.fields[hf.key]
		if value == "" {
			continue
		}
		b.WriteString("{\\")
		b.WriteString(hf.control)
		b.WriteByte(' ')
		b.WriteString(rtf.EscapeText(value))
		b.WriteByte('}')
	}
	b.WriteString("}\n")
	fmt.Fprintf(&b, "\\paperw%d\\paperh%d\n", paperWidthTwips, paperHeightTwips)
	return b.String()
}

// undefinedField builds an ErrUndefinedField error with a did-you-mean
// hint when a close match exists.
func undefinedField(name string) error {
	return fmt.Errorf("%w: %q%s", ErrUndefinedField, name, hints.ForFieldName(name, FieldNames()))
}
