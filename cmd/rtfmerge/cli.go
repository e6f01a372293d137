package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	rtfmerge "github.com/docfold/go-rtfmerge"
	"github.com/docfold/go-rtfmerge/internal/config"
)

// Sentinel errors for CLI operations.
var (
	errUsage     = errors.New("invalid arguments")
	errNoInputs  = errors.New("no input documents: pass files or use --config")
	errReadInput = errors.New("failed to read input file")
)

// run parses arguments, builds the merger, and writes the output. Merged
// content goes to the --output path, or to stdout when none is given.
func run(args []string, stdout io.Writer) error {
	flags, inputs, err := parseFlags(args[1:])
	if err != nil {
		return err
	}

	m, err := buildMerger(flags, inputs)
	if err != nil {
		return err
	}

	if flags.output == "" {
		merged, err := m.AsString()
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, merged)
		return err
	}

	if err := m.SaveTo(flags.output); err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", flags.output)
	}
	return nil
}

// buildMerger assembles a merger from a manifest (if any), positional
// inputs, and metadata flags. Manifest inputs come first, then positional
// arguments; flag-provided metadata overrides manifest metadata.
func buildMerger(flags *mergeFlags, inputs []string) (*rtfmerge.Merger, error) {
	opts := rtfmerge.StringsAsFilenames
	if flags.asData {
		opts = rtfmerge.StringsAsData
	}
	m, err := rtfmerge.New(opts)
	if err != nil {
		return nil, err
	}

	if flags.config != "" {
		cfg, err := config.Load(flags.config)
		if err != nil {
			return nil, err
		}
		if flags.output == "" {
			flags.output = cfg.Output
		}
		for _, field := range cfg.Info.Fields() {
			if err := m.Header().Set(field[0], field[1]); err != nil {
				return nil, err
			}
		}
		for i, in := range cfg.Inputs {
			if err := addManifestInput(m, in); err != nil {
				return nil, fmt.Errorf("inputs[%d]: %w", i, err)
			}
		}
	}

	for _, arg := range inputs {
		if err := addPositionalInput(m, flags, arg); err != nil {
			return nil, err
		}
	}

	if err := applyInfoFlags(m, &flags.info); err != nil {
		return nil, err
	}

	if m.Count() == 0 {
		return nil, errNoInputs
	}
	return m, nil
}

// addManifestInput adds one manifest input to the merger.
func addManifestInput(m *rtfmerge.Merger, in config.InputSpec) error {
	switch {
	case in.File != "":
		m.AddFile(in.File)
	case in.Data != "":
		m.AddData(in.Data)
	case in.Markdown != "":
		md, err := os.ReadFile(in.Markdown) // #nosec G304 -- manifest-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", errReadInput, err)
		}
		return m.AddDocument(rtfmerge.MarkdownDocument(string(md)))
	}
	return nil
}

// addPositionalInput adds one positional argument per the mode flags.
func addPositionalInput(m *rtfmerge.Merger, flags *mergeFlags, arg string) error {
	if flags.asMarkdown {
		md, err := os.ReadFile(arg) // #nosec G304 -- input path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %v", errReadInput, err)
		}
		return m.AddDocument(rtfmerge.MarkdownDocument(string(md)))
	}
	return m.Add(arg)
}

// applyInfoFlags sets header fields from metadata flags, skipping empties.
func applyInfoFlags(m *rtfmerge.Merger, f *infoFlags) error {
	fields := [][2]string{
		{"Title", f.title}, {"Subject", f.subject}, {"Author", f.author},
		{"Manager", f.manager}, {"Company", f.company}, {"Operator", f.operator},
		{"Category", f.category}, {"Keywords", f.keywords}, {"Comment", f.comment},
		{"Summary", f.summary}, {"Version", f.version},
	}
	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		if err := m.Header().Set(field[0], field[1]); err != nil {
			return err
		}
	}
	return nil
}
