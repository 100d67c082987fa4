// internal/defs/loader.go
package defs

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lane-defense/pkg/glyph"
)

// ErrInvalidCatalog marks catalogs that decode but break an engine invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed data/catalog.yaml
var defaultCatalog []byte

var (
	builtin     *Catalog
	builtinErr  error
	builtinOnce sync.Once
)

// Decode reads a catalog from YAML, encodes the tower names and validates the result.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}
	for i := range c.Towers {
		g, err := glyph.Encode(c.Towers[i].Name)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCatalog, "tower %d name: %v", i, err)
		}
		c.Towers[i].Glyphs = g
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the catalog file at path. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Builtin returns the catalog compiled into the binary. The same value is shared by every
// caller and must not be modified.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Decode(bytes.NewReader(defaultCatalog))
	})
	return builtin, builtinErr
}

// MustBuiltin is Builtin for callers that cannot run without it.
func MustBuiltin() *Catalog {
	c, err := Builtin()
	if err != nil {
		panic(err)
	}
	return c
}
