package options

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDefinition = errors.New("invalid colourspace definition")

type DefinitionFormat int

const (
	FormatYAML DefinitionFormat = iota
	FormatTOML
)

func (f DefinitionFormat) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return fmt.Sprintf("DefinitionFormat(%d)", int(f))
}

// ColourspaceDefinition is a user supplied colourspace. The white point is
// given either directly or as an illuminant name, never both.
type ColourspaceDefinition struct {
	Name       string      `yaml:"name" toml:"name"`
	Primaries  [][]float64 `yaml:"primaries" toml:"primaries"`
	Whitepoint []float64   `yaml:"whitepoint,omitempty" toml:"whitepoint,omitempty"`
	Illuminant string      `yaml:"illuminant,omitempty" toml:"illuminant,omitempty"`
	Transfer   string      `yaml:"transfer,omitempty" toml:"transfer,omitempty"`
}

type Definitions struct {
	Colourspaces []ColourspaceDefinition `yaml:"colourspaces" toml:"colourspaces"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (DefinitionFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unsupported definition file extension %q", filepath.Ext(path))
}

func LoadDefinitions(path string) (*Definitions, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	defs, err := ParseDefinitions(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %d colourspace definitions from %s", len(defs.Colourspaces), path)
	return defs, nil
}

func ParseDefinitions(data []byte, format DefinitionFormat) (*Definitions, error) {
	defs := &Definitions{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(defs); err != nil {
			return nil, err
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(defs); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported definition format %v", format)
	}

	for i, def := range defs.Colourspaces {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("colourspace %d: %w", i, err)
		}
	}
	return defs, nil
}

// Validate checks shape only; the numbers themselves are not range checked.
func (d ColourspaceDefinition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	}
	if len(d.Primaries) != 3 {
		return fmt.Errorf("%w: %s: expected 3 primaries, got %d", ErrInvalidDefinition, d.Name, len(d.Primaries))
	}
	for i, p := range d.Primaries {
		if len(p) != 2 {
			return fmt.Errorf("%w: %s: primary %d needs 2 coordinates, got %d", ErrInvalidDefinition, d.Name, i, len(p))
		}
	}
	hasWhitepoint := d.Whitepoint != nil
	hasIlluminant := d.Illuminant != ""
	if hasWhitepoint == hasIlluminant {
		return fmt.Errorf("%w: %s: exactly one of whitepoint or illuminant is required", ErrInvalidDefinition, d.Name)
	}
	if hasWhitepoint && len(d.Whitepoint) != 2 {
		return fmt.Errorf("%w: %s: whitepoint needs 2 coordinates, got %d", ErrInvalidDefinition, d.Name, len(d.Whitepoint))
	}
	return nil
}

// PrimariesMatrix returns the primaries as a row-major 3x2 array. Call
// Validate first.
func (d ColourspaceDefinition) PrimariesMatrix() [3][2]float64 {
	var m [3][2]float64
	for i := 0; i < 3; i++ {
		m[i][0] = d.Primaries[i][0]
		m[i][1] = d.Primaries[i][1]
	}
	return m
}
