package rtfmerge

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// SectionMarker separates consecutive document bodies in merged output:
// an RTF section break followed by a line break. It never appears before
// the first body or after the last.
const SectionMarker = "\\sect\n"

// closingMarker terminates the RTF root group. It is emitted by the
// streaming output paths only; AsString leaves the root group open,
// matching the historical string-form layout.
const closingMarker = "}"

// Merger merges multiple RTF documents into one output document sharing a
// single header. A Merger is not safe for concurrent use: use one Merger
// per merge job, and serialize access externally when embedding it in a
// concurrent host.
type Merger struct {
	opts     Options
	header   *Header
	registry *registry
}

// New creates a Merger. Each argument may be a Document, a string
// (interpreted per the active Options), or an Options value. Options
// arguments apply to every string argument regardless of position; when
// several are given, the last one wins outright rather than combining.
// Any other argument type fails with ErrInvalidArgument naming the
// 1-based position, and nothing is added.
func New(args ...any) (*Merger, error) {
	opts := OptNone
	queued := make([]any, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case Options:
			opts = v
		case string, Document:
			queued = append(queued, v)
		default:
			return nil, fmt.Errorf("%w: argument %d has type %T", ErrInvalidArgument, i+1, arg)
		}
	}

	m := &Merger{
		opts:     opts.normalize(),
		header:   NewHeader(),
		registry: newRegistry(),
	}
	for _, input := range queued {
		if err := m.Add(input); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Header returns the shared header accumulator for this merge session.
func (m *Merger) Header() *Header { return m.header }

// Options returns the active option flags.
func (m *Merger) Options() Options { return m.opts }

// Add resolves input into a document and appends it to the registry.
// Strings are interpreted per the active Options: file paths by default,
// or literal data under StringsAsData. Add never reads files; file
// content is loaded lazily at output time. Inputs that are neither a
// Document nor a string fail with ErrInvalidInputType and nothing is
// added.
func (m *Merger) Add(input any) error {
	doc, err := m.resolve(input)
	if err != nil {
		return err
	}
	m.registry.add(newHandle(doc, m.header))
	return nil
}

// AddAt stores input at an explicit index, overwriting any document
// already held there. Indices skipped over stay unset: they do not count
// and do not appear in output.
func (m *Merger) AddAt(index int, input any) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	doc, err := m.resolve(input)
	if err != nil {
		return err
	}
	m.registry.set(index, newHandle(doc, m.header))
	return nil
}

// AddFile appends a file-backed document, bypassing Options
// classification. The file is not touched until output time.
func (m *Merger) AddFile(path string) {
	m.registry.add(newHandle(&fileDocument{path: path}, m.header))
}

// AddData appends an in-memory document holding the literal data,
// bypassing Options classification.
func (m *Merger) AddData(data string) {
	m.registry.add(newHandle(&dataDocument{data: data}, m.header))
}

// AddDocument appends a caller-supplied document. Only the reference is
// stored; content is never copied.
func (m *Merger) AddDocument(doc Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil Document", ErrInvalidInputType)
	}
	m.registry.add(newHandle(doc, m.header))
	return nil
}

// resolve classifies a heterogeneous input into a concrete document.
func (m *Merger) resolve(input any) (Document, error) {
	switch v := input.(type) {
	case Document:
		return v, nil
	case string:
		if m.opts.stringsAsData() {
			return &dataDocument{data: v}, nil
		}
		return &fileDocument{path: v}, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInputType, input)
	}
}

// Count returns the number of documents currently held.
func (m *Merger) Count() int { return m.registry.count() }

// Exists reports whether index currently holds a document. Gaps left by
// Remove and indices never set both report false.
func (m *Merger) Exists(index int) bool { return m.registry.exists(index) }

// Document returns the document at index. Negative, never-set, and
// removed indices fail with ErrIndexOutOfRange.
func (m *Merger) Document(index int) (Document, error) {
	h, err := m.registry.get(index)
	if err != nil {
		return nil, err
	}
	return h.doc, nil
}

// Remove drops the document at index, leaving a gap: later documents keep
// their indices. Removing an absent index is a no-op.
func (m *Merger) Remove(index int) { m.registry.remove(index) }

// Documents returns the held documents in ascending index order.
func (m *Merger) Documents() []Document {
	handles := m.registry.ordered()
	docs := make([]Document, len(handles))
	for i, h := range handles {
		docs[i] = h.doc
	}
	return docs
}

// AsString builds the merged document fully in memory: the rendered
// header followed by each body in ascending index order, with
// SectionMarker strictly between consecutive bodies. Peak memory is
// proportional to the total body size. Any body failure aborts the whole
// operation; a failed merge is not resumable.
//
// The RTF root group is left open here; SaveTo and Write emit the closing
// brace.
func (m *Merger) AsString() (string, error) {
	var b strings.Builder
	b.WriteString(m.header.Build())
	for n, h := range m.registry.ordered() {
		body, err := h.doc.Body()
		if err != nil {
			return "", err
		}
		if n > 0 {
			b.WriteString(SectionMarker)
		}
		b.WriteString(body)
	}
	return b.String(), nil
}

// Write streams the merged document to w: the header first, then one body
// at a time, then the closing brace terminating the root group. Peak
// memory is bounded by the largest single body. A nil writer fails with
// ErrSinkOpen; body failures abort with ErrReadFailure and write failures
// with ErrWriteFailure.
func (m *Merger) Write(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrSinkOpen)
	}
	if err := writeString(w, m.header.Build()); err != nil {
		return err
	}
	for n, h := range m.registry.ordered() {
		body, err := h.doc.Body()
		if err != nil {
			return err
		}
		if n > 0 {
			if err := writeString(w, SectionMarker); err != nil {
				return err
			}
		}
		if err := writeString(w, body); err != nil {
			return err
		}
	}
	return writeString(w, closingMarker)
}

// SaveTo writes the merged document to path, truncating any existing
// content. Open failures wrap ErrFileOpen. The file is closed on every
// exit path; on failure the destination's contents are undefined and the
// caller should discard or retry explicitly.
func (m *Merger) SaveTo(path string) error {
	f, err := os.Create(path) // #nosec G304 -- destination path is caller-provided
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err)
	}
	writeErr := m.Write(f)
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, closeErr)
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}
