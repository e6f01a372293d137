// Package config loads merge manifests: YAML files describing one merge
// job as an output path, shared header fields, and an ordered list of
// input documents.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docfold/go-rtfmerge/internal/fileutil"
	"github.com/docfold/go-rtfmerge/internal/hints"
	"github.com/docfold/go-rtfmerge/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrEmptyName        = errors.New("manifest name cannot be empty")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrAmbiguousInput   = errors.New("input must set exactly one of file, data, markdown")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxInfoLength = 255  // header field values
	MaxPathLength = 4096 // file paths
	MaxDataLength = 1 << 20
)

// Config describes one merge job.
type Config struct {
	Output string      `yaml:"output"`
	Info   InfoConfig  `yaml:"info"`
	Inputs []InputSpec `yaml:"inputs"`
}

// InfoConfig mirrors the recognized header fields.
type InfoConfig struct {
	Title    string `yaml:"title"`
	Subject  string `yaml:"subject"`
	Author   string `yaml:"author"`
	Manager  string `yaml:"manager"`
	Company  string `yaml:"company"`
	Operator string `yaml:"operator"`
	Category string `yaml:"category"`
	Keywords string `yaml:"keywords"`
	Comment  string `yaml:"comment"`
	Summary  string `yaml:"summary"`
	Version  string `yaml:"version"`
}

// Fields returns the non-empty info fields keyed by external header field
// name, in declaration order.
func (c InfoConfig) Fields() [][2]string {
	pairs := [][2]string{
		{"Title", c.Title}, {"Subject", c.Subject}, {"Author", c.Author},
		{"Manager", c.Manager}, {"Company", c.Company}, {"Operator", c.Operator},
		{"Category", c.Category}, {"Keywords", c.Keywords}, {"Comment", c.Comment},
		{"Summary", c.Summary}, {"Version", c.Version},
	}
	fields := pairs[:0]
	for _, p := range pairs {
		if p[1] != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// InputSpec describes one input document. Exactly one field may be set:
// file is a path to an RTF file, data is literal document data, and
// markdown is a path to a Markdown file to convert.
type InputSpec struct {
	File     string `yaml:"file"`
	Data     string `yaml:"data"`
	Markdown string `yaml:"markdown"`
}

// Validate checks field lengths and that every input sets exactly one
// source. Called automatically by Load, but available for consumers that
// construct Config directly.
func (c *Config) Validate() error {
	if err := validateLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	for _, f := range c.Info.Fields() {
		if err := validateLength("info."+f[0], f[1], MaxInfoLength); err != nil {
			return err
		}
	}
	for i, in := range c.Inputs {
		set := 0
		for _, v := range []string{in.File, in.Data, in.Markdown} {
			if v != "" {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("%w: inputs[%d]", ErrAmbiguousInput, i)
		}
		if err := validateLength(fmt.Sprintf("inputs[%d].file", i), in.File, MaxPathLength); err != nil {
			return err
		}
		if err := validateLength(fmt.Sprintf("inputs[%d].data", i), in.Data, MaxDataLength); err != nil {
			return err
		}
		if err := validateLength(fmt.Sprintf("inputs[%d].markdown", i), in.Markdown, MaxPathLength); err != nil {
			return err
		}
	}
	return nil
}

// validateLength checks if a field exceeds its maximum allowed length.
func validateLength(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, len(value), max)
	}
	return nil
}

// Load reads a manifest from a file path or manifest name. Names (no path
// separator) are searched in the current directory and the user config
// directory, trying .yaml then .yml. Missing files are an error, never a
// silent fallback.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolvePath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolvePath searches for a manifest by name in standard locations.
func resolvePath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "rtfmerge", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: %s%s", ErrManifestNotFound, name, hints.ForConfigNotFound(tried))
}
