// Package rtfmerge merges multiple RTF documents into a single output
// document sharing one header.
//
// # Quick Start
//
// Create a merger, add documents, and build the output:
//
//	m, err := rtfmerge.New("a.rtf", "b.rtf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Header().Set("Title", "Merged Report")
//	if err := m.SaveTo("merged.rtf"); err != nil {
//	    log.Fatal(err)
//	}
//
// Bare strings passed to New or Add are interpreted according to the
// active Options: file paths by default, or literal document data under
// StringsAsData:
//
//	m, err := rtfmerge.New(rtfmerge.StringsAsData, "{\\rtf1 Hello}")
//
// # Output Modes
//
// AsString materializes the whole merged document in memory. SaveTo and
// Write stream it one body at a time, so peak memory is bounded by the
// largest single document rather than the sum of all of them. File-backed
// documents are read lazily at output time, never when added.
//
// # Header Fields
//
// Every document added to a merger shares one header. Eleven metadata
// fields are recognized (Title, Subject, Author, Manager, Company,
// Operator, Category, Keywords, Comment, Summary, Version); any other
// name fails with ErrUndefinedField. Documents may contribute their own
// metadata: the first value written to a field wins, in add order.
//
// # Markdown Input
//
// MarkdownDocument adapts Markdown content into a mergeable document,
// rendering it as RTF via goldmark:
//
//	m.AddDocument(rtfmerge.MarkdownDocument("# Notes\n\nSee *appendix*."))
//
// # Concurrency
//
// A Merger is not safe for concurrent use: use one Merger per merge job
// and never share one across goroutines without external synchronization.
package rtfmerge
