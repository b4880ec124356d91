package tiles

// yaml.go: loading tile sets from YAML, so the path generator can be driven
// by custom tile vocabularies without recompiling.
//
// Format:
//
//	tiles:
//	  - glyph: "┌"
//	    right: true
//	    down: true
//	  - glyph: " "

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type tileSpec struct {
	Glyph string `yaml:"glyph"`
	Edges `yaml:",inline"`
}

type setSpec struct {
	Tiles []tileSpec `yaml:"tiles"`
}

// Load reads a YAML tile set.
func Load(r io.Reader) (*Set, error) {
	var spec setSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("load tile set: %w", err)
	}
	ts := make([]Tile, len(spec.Tiles))
	for i, t := range spec.Tiles {
		if utf8.RuneCountInString(t.Glyph) != 1 {
			return nil, fmt.Errorf("load tile set: tile %d glyph %q must be a single rune", i, t.Glyph)
		}
		glyph, _ := utf8.DecodeRuneInString(t.Glyph)
		ts[i] = Tile{Glyph: glyph, Edges: t.Edges}
	}
	return New(ts)
}

// LoadFile reads a YAML tile set from disk.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load tile set: %w", err)
	}
	defer f.Close()
	return Load(f)
}
