// Package tree loads choice option trees from TOML, YAML or JSON.
//
// All three formats share one shape:
//
//	title = "Pick a fruit"
//	message = "Only ripe ones"
//	mode = "multiple"
//
//	[[options]]
//	id = "apple"
//	label = "Apple"
//	selected = true
//
//	[[options]]
//	id = "citrus"
//	label = "Citrus"
//
//	  [[options.items]]
//	  id = "lemon"
//	  label = "Lemon"
//	  disabled = true
package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/raphi011/choice/internal/choice"
)

// Format is an option tree file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is a decoded option tree file.
type File struct {
	Title   string          `toml:"title" yaml:"title" json:"title"`
	Message string          `toml:"message" yaml:"message" json:"message"`
	Mode    string          `toml:"mode" yaml:"mode" json:"mode"` // empty means the caller's default
	Options []choice.Option `toml:"options" yaml:"options" json:"options"`
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be toml, yaml or json", s)
	}
}

// DetectFormat derives the format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %q: no file extension (use --format)", path)
	}
	return ParseFormat(ext)
}

// Load reads and parses the file at path. An empty format is detected
// from the extension.
func Load(path string, format Format) (*File, error) {
	if format == "" {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read option file: %w", err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Read parses an option tree from r.
func Read(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read option tree: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format. Unknown keys are an error in
// every format.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown field %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return &f, nil
}

// Prompt builds the prompt described by the file. fallback is used when
// the file does not set a mode.
func (f *File) Prompt(fallback choice.Mode) (choice.Prompt, error) {
	mode := fallback
	if f.Mode != "" {
		m, err := choice.ParseMode(f.Mode)
		if err != nil {
			return choice.Prompt{}, err
		}
		mode = m
	}
	return choice.Prompt{
		Title:   f.Title,
		Message: f.Message,
		Mode:    mode,
		Options: f.Options,
	}, nil
}
