// Package catalog loads the knowledge catalog from YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/studentnest/internal/domain/faq"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Load reads a catalog file. An empty path loads the embedded default catalog.
func Load(path string) (faq.Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return faq.Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return faq.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Default returns the embedded default catalog.
func Default() faq.Catalog {
	cat, err := Parse(defaultCatalog)
	if err != nil {
		panic("embedded catalog is invalid: " + err.Error())
	}
	return cat
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (faq.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return faq.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	records := make([]faq.Record, 0, len(file.Records))
	for i, dto := range file.Records {
		r, err := dto.toDomain()
		if err != nil {
			return faq.Catalog{}, fmt.Errorf("record #%d: %w", i+1, err)
		}
		records = append(records, r)
	}

	cat, err := faq.NewCatalog(records)
	if err != nil {
		return faq.Catalog{}, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}
