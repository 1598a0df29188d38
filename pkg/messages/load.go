package messages

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog parses a YAML document of key: suffix pairs and layers it over
// Default. Entries may also be nested under a top-level "validation" map,
// mirroring the translation keys:
//
//	validation:
//	  required: "est obligatoire"
//	  string: "doit être un texte"
func LoadCatalog(data []byte) (Catalog, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, errors.Join(ErrInvalidCatalog, err)
	}
	if len(doc) == 0 {
		return Catalog{}, fmt.Errorf("%w: no entries found", ErrInvalidCatalog)
	}

	if nested, ok := doc["validation"].(map[string]any); ok && len(doc) == 1 {
		doc = nested
	}

	entries := make(map[Key]string, len(doc))
	for k, v := range doc {
		text, ok := v.(string)
		if !ok {
			return Catalog{}, fmt.Errorf("%w: entry %q: expected string, got %T", ErrInvalidCatalog, k, v)
		}
		entries[Key(k)] = text
	}

	return NewCatalog(entries), nil
}

// LoadCatalogFile reads and parses a YAML catalog file.
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Join(ErrReadCatalog, err)
	}
	return LoadCatalog(data)
}
