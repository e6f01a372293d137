package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// infoFlags holds header metadata flags, one per recognized field.
type infoFlags struct {
	title    string
	subject  string
	author   string
	manager  string
	company  string
	operator string
	category string
	keywords string
	comment  string
	summary  string
	version  string
}

// mergeFlags holds all flags for the merge command.
type mergeFlags struct {
	output     string
	config     string
	asData     bool
	asMarkdown bool
	quiet      bool
	info       infoFlags
}

// addInfoFlags adds header metadata flags to a FlagSet.
func addInfoFlags(fs *flag.FlagSet, f *infoFlags) {
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.subject, "subject", "", "document subject")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.manager, "manager", "", "document manager")
	fs.StringVar(&f.company, "company", "", "company name")
	fs.StringVar(&f.operator, "operator", "", "operator name")
	fs.StringVar(&f.category, "category", "", "document category")
	fs.StringVar(&f.keywords, "keywords", "", "document keywords")
	fs.StringVar(&f.comment, "comment", "", "document comment")
	fs.StringVar(&f.summary, "summary", "", "document summary")
	fs.StringVar(&f.version, "doc-version", "", "document version")
}

// parseFlags parses command-line flags and returns the positional inputs.
func parseFlags(args []string) (*mergeFlags, []string, error) {
	fs := flag.NewFlagSet("rtfmerge", flag.ContinueOnError)
	f := &mergeFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.config, "config", "c", "", "merge manifest name or path")
	fs.BoolVar(&f.asData, "data", false, "treat positional arguments as literal RTF data")
	fs.BoolVar(&f.asMarkdown, "md", false, "treat positional arguments as Markdown files")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	addInfoFlags(fs, &f.info)

	fs.Usage = func() { printUsage(fs.Output(), fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return f, fs.Args(), nil
}

// printUsage writes the command usage and flag defaults.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: rtfmerge [flags] <input.rtf> [input2.rtf ...]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Merges RTF documents into one, sharing a single header.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, fs.FlagUsages())
}
