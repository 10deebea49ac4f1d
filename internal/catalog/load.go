package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

//go:embed movies.toml
var defaultCatalog []byte

// document is the on-disk shape shared by the TOML and YAML formats.
type document struct {
	Items []Item `toml:"items" yaml:"items" json:"items"`
}

// Default returns the built-in catalog.
func Default() (*Store, error) {
	items, err := decodeTOML(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("decode built-in catalog: %w", err)
	}
	return New(items)
}

// Open resolves a catalog source: empty uses the built-in catalog, an
// http(s) URL is fetched, anything else is read from disk.
func Open(ctx context.Context, source string) (*Store, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return Default()
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return Fetch(ctx, source)
	default:
		return LoadFile(source)
	}
}

// LoadFile reads a catalog file, choosing the decoder from its extension.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	items, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", filepath.Base(path), err)
	}
	return New(items)
}

// Decode parses catalog bytes in the format named by ext (".toml", ".yaml",
// ".yml", ".json" or ".jsonc").
func Decode(ext string, data []byte) ([]Item, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		return decodeTOML(data)
	case "yaml", "yml":
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc.Items, nil
	case "json", "jsonc":
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

func decodeTOML(data []byte) ([]Item, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// decodeJSON accepts either a bare array of items or {"items": [...]}.
// Comments and trailing commas are stripped first.
func decodeJSON(data []byte) ([]Item, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) > 0 && stripped[0] == '[' {
		var items []Item
		if err := json.Unmarshal(stripped, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var doc document
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return nil, err
	}
	return doc.Items, nil
}
