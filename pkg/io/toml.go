package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/archdraw/pkg/diagram"
	"github.com/matzehuels/archdraw/pkg/errors"
)

// DecodeTOML parses a definition file without building it. Unknown keys are
// rejected so typos do not silently drop settings.
func DecodeTOML(r io.Reader) (Definition, error) {
	var def Definition
	meta, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return Definition{}, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Definition{}, invalid("unknown keys: %s", strings.Join(keys, ", "))
	}
	return def, nil
}

// ReadTOML decodes a definition file from r and builds the diagram.
// ReadTOML does not close r.
func ReadTOML(r io.Reader, opts ...diagram.Option) (*diagram.Diagram, error) {
	def, err := DecodeTOML(r)
	if err != nil {
		return nil, err
	}
	return def.Build(opts...)
}

// ImportTOML reads the definition file at path and builds the diagram.
// A missing file fails with ErrCodeFileNotFound.
func ImportTOML(path string, opts ...diagram.Option) (*diagram.Diagram, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadTOML(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// WriteTOML encodes d as a definition file.
func WriteTOML(d *diagram.Diagram, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(FromDiagram(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func create(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
