// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a problem file.
type Format int

const (
	// FormatTOML is a TOML document with a [[problems]] array.
	FormatTOML Format = iota

	// FormatYAML is a YAML document with a problems: sequence.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// DetectFormat picks the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// file is the on-disk layout shared by both formats.
type file struct {
	Problems []Problem `toml:"problems" yaml:"problems"`
}

// Decode reads a problem set in the given format and validates it.
func Decode(r io.Reader, format Format) (*List, error) {
	var doc file
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("problem: TOML parse error: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("problem: YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	return NewList(doc.Problems...)
}

// LoadFile reads a .toml, .yaml or .yml problem set.
func LoadFile(path string) (*List, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	defer fh.Close()

	return Decode(fh, format)
}
