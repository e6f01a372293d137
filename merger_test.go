package rtfmerge

// Notes:
// - New: heterogeneous argument classification, Options precedence
// - Registry surface: count, order, explicit positions, gaps after remove
// - Output: string form layout, streaming form closing brace, failure paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stubDocument is a caller-supplied Document for exercising the engine
// without file I/O.
type stubDocument struct {
	body string
	meta map[string]string
	err  error
}

func (d *stubDocument) Body() (string, error)       { return d.body, d.err }
func (d *stubDocument) Metadata() map[string]string { return d.meta }

func TestNew_ArgumentClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []any
		wantCount int
		wantErr   error
	}{
		{
			name:      "no arguments",
			args:      nil,
			wantCount: 0,
		},
		{
			name:      "documents and data strings",
			args:      []any{StringsAsData, "first", &stubDocument{body: "second"}},
			wantCount: 2,
		},
		{
			name:    "unsupported argument type",
			args:    []any{StringsAsData, "ok", 3.14},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "int is not an Options value",
			args:    []any{1},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := New(tt.args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if got := m.Count(); got != tt.wantCount {
				t.Errorf("Count() = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestNew_BadArgumentNamesPosition(t *testing.T) {
	t.Parallel()

	_, err := New(StringsAsData, "ok", 42)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if !strings.Contains(err.Error(), "argument 3") {
		t.Errorf("error %q should name the 1-based position", err.Error())
	}
}

func TestNew_OptionsResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []any
		want Options
	}{
		{name: "default forces filenames", args: nil, want: StringsAsFilenames},
		{name: "explicit none forces filenames", args: []any{OptNone}, want: StringsAsFilenames},
		{name: "data mode", args: []any{StringsAsData}, want: StringsAsData},
		{name: "last options argument wins", args: []any{StringsAsData, StringsAsFilenames}, want: StringsAsFilenames},
		{name: "both bits resolve to data", args: []any{StringsAsFilenames | StringsAsData}, want: StringsAsData},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := New(tt.args...)
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if got := m.Options() & stringsMask; got != tt.want {
				t.Errorf("Options() string bits = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMerger_AddInvalidInputType(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Add(42); !errors.Is(err, ErrInvalidInputType) {
		t.Errorf("Add(42) error = %v, want ErrInvalidInputType", err)
	}
	if m.Count() != 0 {
		t.Errorf("failed Add must not modify the registry, Count() = %d", m.Count())
	}
}

func TestMerger_InsertionOrder(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData)
	if err != nil {
		t.Fatal(err)
	}
	bodies := []string{"A", "B", "C", "D"}
	for _, b := range bodies {
		if err := m.Add(b); err != nil {
			t.Fatal(err)
		}
	}

	if got := m.Count(); got != len(bodies) {
		t.Fatalf("Count() = %d, want %d", got, len(bodies))
	}
	for i, want := range bodies {
		doc, err := m.Document(i)
		if err != nil {
			t.Fatalf("Document(%d): %v", i, err)
		}
		body, err := doc.Body()
		if err != nil {
			t.Fatal(err)
		}
		if body != want {
			t.Errorf("Document(%d) body = %q, want %q", i, body, want)
		}
	}
}

func TestMerger_ExplicitPositionLeavesGaps(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}

	if err := m.AddAt(5, "f"); err != nil {
		t.Fatal(err)
	}

	if got := m.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4 (only occupied positions)", got)
	}
	for _, i := range []int{3, 4} {
		if m.Exists(i) {
			t.Errorf("Exists(%d) = true, want false (never set)", i)
		}
		if _, err := m.Document(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Document(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}

	// Appending after an explicit position continues past it.
	if err := m.Add("g"); err != nil {
		t.Fatal(err)
	}
	if !m.Exists(6) {
		t.Error("Exists(6) = false, want true after append following AddAt(5)")
	}
}

func TestMerger_AddAtOverwrites(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "old")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddAt(0, "new"); err != nil {
		t.Fatal(err)
	}

	if got := m.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	doc, err := m.Document(0)
	if err != nil {
		t.Fatal(err)
	}
	if body, _ := doc.Body(); body != "new" {
		t.Errorf("Document(0) body = %q, want %q", body, "new")
	}
}

func TestMerger_AddAtNegativeIndex(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddAt(-1, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("AddAt(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestMerger_RemoveLeavesGap(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	m.Remove(1)

	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if m.Exists(1) {
		t.Error("Exists(1) = true after Remove, want false")
	}
	if !m.Exists(2) {
		t.Error("Exists(2) = false, want true (removal must not shift)")
	}

	_, err = m.Document(1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Document(removed) error = %v, want ErrIndexOutOfRange", err)
	}
	if !strings.Contains(err.Error(), "removed") {
		t.Errorf("error %q should distinguish removed from never-set", err.Error())
	}

	// Iteration skips the gap and preserves order.
	var bodies []string
	for _, doc := range m.Documents() {
		body, err := doc.Body()
		if err != nil {
			t.Fatal(err)
		}
		bodies = append(bodies, body)
	}
	if want := []string{"a", "c"}; !equalStrings(bodies, want) {
		t.Errorf("Documents() bodies = %v, want %v", bodies, want)
	}

	// Removing an absent index is a no-op, not an error.
	m.Remove(1)
	m.Remove(99)
	if got := m.Count(); got != 2 {
		t.Errorf("Count() after no-op removes = %d, want 2", got)
	}
}

func TestMerger_DocumentNegativeIndex(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "a")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Document(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Document(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestMerger_MetadataFirstWriterWins(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	docs := []*stubDocument{
		{body: "1", meta: map[string]string{"Title": "First", "Author": "Alice"}},
		{body: "2", meta: map[string]string{"Title": "Second", "Company": "Acme"}},
	}
	for _, d := range docs {
		if err := m.AddDocument(d); err != nil {
			t.Fatal(err)
		}
	}

	for name, want := range map[string]string{
		"Title":   "First",
		"Author":  "Alice",
		"Company": "Acme",
	} {
		got, err := m.Header().Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Header().Get(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestMerger_MetadataNeverOverwritesSetFields(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Header().Set("Title", "Pinned"); err != nil {
		t.Fatal(err)
	}
	if err := m.AddDocument(&stubDocument{body: "1", meta: map[string]string{"Title": "Usurper"}}); err != nil {
		t.Fatal(err)
	}

	got, err := m.Header().Get("Title")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Pinned" {
		t.Errorf("Title = %q, want %q", got, "Pinned")
	}
}

func TestMerger_AsStringZeroDocuments(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.AsString()
	if err != nil {
		t.Fatal(err)
	}
	if want := m.Header().Build(); got != want {
		t.Errorf("AsString() with zero documents = %q, want the bare header %q", got, want)
	}
}

func TestMerger_AsStringLayout(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "A", "B", "C")
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.AsString()
	if err != nil {
		t.Fatal(err)
	}
	want := m.Header().Build() + "A" + SectionMarker + "B" + SectionMarker + "C"
	if got != want {
		t.Errorf("AsString() = %q, want %q", got, want)
	}
}

func TestMerger_AsStringSkipsRemoved(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "A", "B", "C")
	if err != nil {
		t.Fatal(err)
	}
	m.Remove(1)

	got, err := m.AsString()
	if err != nil {
		t.Fatal(err)
	}
	want := m.Header().Build() + "A" + SectionMarker + "C"
	if got != want {
		t.Errorf("AsString() = %q, want %q", got, want)
	}
}

func TestMerger_AsStringBodyFailureAborts(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	readErr := errors.New("disk on fire")
	if err := m.AddDocument(&stubDocument{body: "ok"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddDocument(&stubDocument{err: readErr}); err != nil {
		t.Fatal(err)
	}

	if _, err := m.AsString(); !errors.Is(err, readErr) {
		t.Errorf("AsString() error = %v, want %v", err, readErr)
	}
}

func TestMerger_SaveToAppendsClosingBrace(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "merged.rtf")
	if err := m.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	asString, err := m.AsString()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), asString+"}"; got != want {
		t.Errorf("SaveTo() wrote %q, want %q", got, want)
	}
}

func TestMerger_SaveToTruncatesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "merged.rtf")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := New(StringsAsData, "A")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "xxxx") {
		t.Error("SaveTo() should truncate existing content")
	}
}

func TestMerger_SaveToUnopenablePath(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "A")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "missing-dir", "merged.rtf")
	if err := m.SaveTo(path); !errors.Is(err, ErrFileOpen) {
		t.Errorf("SaveTo() error = %v, want ErrFileOpen", err)
	}
}

func TestMerger_SaveToBodyFailureReleasesFile(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddDocument(&stubDocument{err: errors.New("boom")}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "merged.rtf")
	if err := m.SaveTo(path); err == nil {
		t.Fatal("SaveTo() should fail when a body fails")
	}

	// The file handle must be released: a follow-up merge to the same
	// destination succeeds.
	if err := m.AddAt(0, &stubDocument{body: "recovered"}); err != nil {
		t.Fatal(err)
	}
	if err := m.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() after recovery: %v", err)
	}
}

// failingWriter fails after accepting limit bytes.
type failingWriter struct {
	limit   int
	written int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		return 0, errors.New("sink full")
	}
	w.written += len(p)
	return len(p), nil
}

func TestMerger_WriteFailures(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "A", "B")
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Write(nil); !errors.Is(err, ErrSinkOpen) {
		t.Errorf("Write(nil) error = %v, want ErrSinkOpen", err)
	}
	if err := m.Write(&failingWriter{limit: 10}); !errors.Is(err, ErrWriteFailure) {
		t.Errorf("Write(failing) error = %v, want ErrWriteFailure", err)
	}
}

func TestMerger_WriteMatchesSaveTo(t *testing.T) {
	t.Parallel()

	m, err := New(StringsAsData, "A", "B", "C")
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := m.Write(&b); err != nil {
		t.Fatal(err)
	}
	asString, err := m.AsString()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), asString+"}"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestMerger_LazyFileReadFailsAtOutputTime(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.rtf")
	m, err := New(missing)
	if err != nil {
		t.Fatalf("Add must not touch the file, got %v", err)
	}

	_, err = m.AsString()
	if !errors.Is(err, ErrReadFailure) {
		t.Fatalf("AsString() error = %v, want ErrReadFailure", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q should name the originating path", err.Error())
	}
}

func TestMerger_AddDocumentNil(t *testing.T) {
	t.Parallel()

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddDocument(nil); !errors.Is(err, ErrInvalidInputType) {
		t.Errorf("AddDocument(nil) error = %v, want ErrInvalidInputType", err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
